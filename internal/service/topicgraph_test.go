package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"learntrack_backend/internal/model"
)

func topic(id uint, order int, prereqs ...uint) model.Topic {
	t := model.Topic{Order: order, Prerequisites: prereqs}
	t.ID = id
	return t
}

func TestBuildTopicGraphLevels(t *testing.T) {
	// A -> B -> D, A -> C -> D: D must sit one level above its deepest
	// prerequisite.
	topics := []model.Topic{
		topic(1, 1),
		topic(2, 2, 1),
		topic(3, 3, 1),
		topic(4, 4, 2, 3),
	}

	nodes := BuildTopicGraph(topics, nil)

	levelOf := map[uint]int{}
	for _, n := range nodes {
		levelOf[n.ID] = n.Level
	}
	assert.Equal(t, 0, levelOf[1])
	assert.Equal(t, 1, levelOf[2])
	assert.Equal(t, 1, levelOf[3])
	assert.Equal(t, 2, levelOf[4])

	// Every topic sits strictly above all of its prerequisites.
	for _, n := range nodes {
		for _, p := range n.Prerequisites {
			assert.Greater(t, n.Level, levelOf[p])
		}
	}
}

func TestBuildTopicGraphPositions(t *testing.T) {
	// Three roots in sibling order get positions 0, 1, 2 within level 0.
	topics := []model.Topic{
		topic(10, 1),
		topic(11, 2),
		topic(12, 3),
		topic(13, 4, 10),
	}

	nodes := BuildTopicGraph(topics, nil)

	assert.Equal(t, 0, nodes[0].Position)
	assert.Equal(t, 1, nodes[1].Position)
	assert.Equal(t, 2, nodes[2].Position)
	// Sole node on level 1 starts back at position 0.
	assert.Equal(t, 1, nodes[3].Level)
	assert.Equal(t, 0, nodes[3].Position)
}

func TestBuildTopicGraphLocking(t *testing.T) {
	topics := []model.Topic{
		topic(1, 1),
		topic(2, 2, 1),
		topic(3, 3, 1, 2),
	}

	// Nothing completed: only the root is unlocked.
	nodes := BuildTopicGraph(topics, map[uint]bool{})
	assert.False(t, nodes[0].Locked)
	assert.True(t, nodes[1].Locked)
	assert.True(t, nodes[2].Locked)

	// Completing topic 1 unlocks topic 2 but not topic 3.
	nodes = BuildTopicGraph(topics, map[uint]bool{1: true})
	assert.False(t, nodes[0].Locked)
	assert.False(t, nodes[1].Locked)
	assert.True(t, nodes[2].Locked)

	nodes = BuildTopicGraph(topics, map[uint]bool{1: true, 2: true})
	assert.False(t, nodes[2].Locked)
}

func TestBuildTopicGraphTerminatesOnCycle(t *testing.T) {
	// A malformed dataset with a cycle must still return promptly.
	topics := []model.Topic{
		topic(1, 1, 2),
		topic(2, 2, 1),
	}

	nodes := BuildTopicGraph(topics, nil)
	assert.Len(t, nodes, 2)
}

func TestHasCycle(t *testing.T) {
	acyclic := []model.Topic{
		topic(1, 1),
		topic(2, 2, 1),
		topic(3, 3, 1, 2),
	}
	assert.False(t, hasCycle(acyclic))

	cyclic := []model.Topic{
		topic(1, 1, 3),
		topic(2, 2, 1),
		topic(3, 3, 2),
	}
	assert.True(t, hasCycle(cyclic))

	selfRef := []model.Topic{topic(1, 1, 1)}
	assert.True(t, hasCycle(selfRef))

	// Edges to unknown ids are ignored.
	dangling := []model.Topic{topic(1, 1, 99)}
	assert.False(t, hasCycle(dangling))
}
