package service

import (
	"learntrack_backend/internal/model"
)

// TopicGraphNode is a topic annotated with its place in the course's
// prerequisite DAG. Level is the longest-path distance from a
// prerequisite-free topic; Position is the zero-based slot within the level;
// Locked reports whether any prerequisite is still incomplete for the
// requesting user. Pixel layout is left to the client.
type TopicGraphNode struct {
	model.Topic
	Level    int  `json:"level"`
	Position int  `json:"position"`
	Locked   bool `json:"locked"`
}

// BuildTopicGraph levels a course's topics and marks the ones locked for the
// given completed-topic set. Topics must already be in sibling order
// (order, then id) — positions within a level follow that order.
func BuildTopicGraph(topics []model.Topic, completed map[uint]bool) []TopicGraphNode {
	levels := resolveLevels(topics)

	nodes := make([]TopicGraphNode, 0, len(topics))
	positions := make(map[int]int)
	for _, t := range topics {
		level := levels[t.ID]
		node := TopicGraphNode{
			Topic:    t,
			Level:    level,
			Position: positions[level],
			Locked:   isLocked(t, completed),
		}
		positions[level]++
		nodes = append(nodes, node)
	}
	return nodes
}

// resolveLevels runs the fixed-point relaxation: every pass raises a topic
// above its highest prerequisite until nothing changes. A DAG settles within
// len(topics) passes; the pass bound keeps a cyclic dataset from hanging the
// request (cycles are rejected at creation, but seed data predates that
// check).
func resolveLevels(topics []model.Topic) map[uint]int {
	levels := make(map[uint]int, len(topics))
	for _, t := range topics {
		levels[t.ID] = 0
	}

	for pass := 0; pass < len(topics); pass++ {
		changed := false
		for _, t := range topics {
			if len(t.Prerequisites) == 0 {
				continue
			}
			maxPrereq := 0
			for _, p := range t.Prerequisites {
				if l, ok := levels[p]; ok && l > maxPrereq {
					maxPrereq = l
				}
			}
			if levels[t.ID] <= maxPrereq {
				levels[t.ID] = maxPrereq + 1
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return levels
}

func isLocked(t model.Topic, completed map[uint]bool) bool {
	for _, p := range t.Prerequisites {
		if !completed[p] {
			return true
		}
	}
	return false
}

// hasCycle reports whether the prerequisite edges contain a cycle, by DFS
// coloring. Edges to ids outside the topic set are ignored; existence is
// validated separately.
func hasCycle(topics []model.Topic) bool {
	prereqs := make(map[uint][]uint, len(topics))
	for _, t := range topics {
		prereqs[t.ID] = t.Prerequisites
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[uint]int, len(topics))

	var visit func(id uint) bool
	visit = func(id uint) bool {
		switch state[id] {
		case visiting:
			return true
		case done:
			return false
		}
		state[id] = visiting
		for _, p := range prereqs[id] {
			if _, ok := prereqs[p]; !ok {
				continue
			}
			if visit(p) {
				return true
			}
		}
		state[id] = done
		return false
	}

	for _, t := range topics {
		if visit(t.ID) {
			return true
		}
	}
	return false
}
