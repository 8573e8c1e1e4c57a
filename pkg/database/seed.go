package database

import (
	"learntrack_backend/internal/model"

	"gorm.io/gorm"
)

// Seed inserts the course catalog, achievement definitions and sample quizzes
// into an empty database. User-generated data (accounts, notes, progress) is
// never seeded.
func Seed(db *gorm.DB) error {
	if err := seedCatalog(db); err != nil {
		return err
	}
	return seedAchievements(db)
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		return nil
	}

	webDev := &model.Course{
		Title:       "Web Development Fundamentals",
		Description: "Learn the basics of web development, including HTML, CSS, and JavaScript",
		ImageURL:    "https://cdn.pixabay.com/photo/2016/11/19/14/00/code-1839406_1280.jpg",
	}
	dsa := &model.Course{
		Title:       "Data Structures and Algorithms",
		Description: "Master the essential computer science concepts for technical interviews",
		ImageURL:    "https://cdn.pixabay.com/photo/2016/11/19/22/52/coding-1841550_1280.jpg",
	}
	security := &model.Course{
		Title:       "Cybersecurity Essentials",
		Description: "Understand fundamental concepts of network security, encryption, and threat analysis",
		ImageURL:    "https://cdn.pixabay.com/photo/2017/05/10/22/28/cyber-security-2301976_1280.jpg",
	}
	for _, c := range []*model.Course{webDev, dsa, security} {
		if err := db.Create(c).Error; err != nil {
			return err
		}
	}

	topic := func(courseID uint, title, description string, order int, prereqs ...uint) (*model.Topic, error) {
		t := &model.Topic{
			CourseID:      courseID,
			Title:         title,
			Description:   description,
			Order:         order,
			Prerequisites: prereqs,
		}
		return t, db.Create(t).Error
	}

	// Web Development Fundamentals
	html, err := topic(webDev.ID, "HTML Basics", "Learn the fundamentals of HTML, the markup language of the web", 1)
	if err != nil {
		return err
	}
	css, err := topic(webDev.ID, "CSS Styling", "Style your web pages with CSS", 2, html.ID)
	if err != nil {
		return err
	}
	js, err := topic(webDev.ID, "JavaScript Essentials", "Add interactivity to your web pages with JavaScript", 3, html.ID, css.ID)
	if err != nil {
		return err
	}
	if _, err := topic(webDev.ID, "Responsive Web Design", "Create websites that work on all devices using media queries and flexible layouts", 4, css.ID); err != nil {
		return err
	}
	ajax, err := topic(webDev.ID, "Web APIs and AJAX", "Learn to use JavaScript to communicate with servers and external APIs", 5, js.ID)
	if err != nil {
		return err
	}
	frameworks, err := topic(webDev.ID, "Modern Frontend Frameworks", "Introduction to React, Vue, and Angular for building complex web applications", 6, js.ID, ajax.ID)
	if err != nil {
		return err
	}
	if _, err := topic(webDev.ID, "Web Accessibility", "Make your websites usable by everyone, including people with disabilities", 7, html.ID, css.ID); err != nil {
		return err
	}
	if _, err := topic(webDev.ID, "Backend Integration", "Connect your frontend to backend services and databases", 8, ajax.ID, frameworks.ID); err != nil {
		return err
	}

	// Data Structures and Algorithms
	arrays, err := topic(dsa.ID, "Arrays and Strings", "Fundamentals of array and string manipulation", 1)
	if err != nil {
		return err
	}
	lists, err := topic(dsa.ID, "Linked Lists", "Understanding linked list data structures", 2, arrays.ID)
	if err != nil {
		return err
	}
	if _, err := topic(dsa.ID, "Stacks and Queues", "Learn about LIFO and FIFO data structures and their applications", 3, lists.ID); err != nil {
		return err
	}
	if _, err := topic(dsa.ID, "Trees and Graphs", "Explore hierarchical and network data structures", 4, lists.ID); err != nil {
		return err
	}
	sorting, err := topic(dsa.ID, "Sorting Algorithms", "Master different methods for organizing data efficiently", 5, arrays.ID)
	if err != nil {
		return err
	}
	if _, err := topic(dsa.ID, "Dynamic Programming", "Solve complex problems by breaking them down into simpler subproblems", 6, sorting.ID); err != nil {
		return err
	}
	if _, err := topic(dsa.ID, "Hash Tables", "Understand key-value storage for efficient data retrieval", 7, arrays.ID); err != nil {
		return err
	}

	// Cybersecurity Essentials
	secFundamentals, err := topic(security.ID, "Security Fundamentals", "Core concepts of information security and cybersecurity", 1)
	if err != nil {
		return err
	}
	network, err := topic(security.ID, "Network Security", "Protecting network infrastructure from unauthorized access and attacks", 2, secFundamentals.ID)
	if err != nil {
		return err
	}
	crypto, err := topic(security.ID, "Cryptography", "Understanding encryption, hashing, and secure communication protocols", 3, secFundamentals.ID)
	if err != nil {
		return err
	}
	if _, err := topic(security.ID, "Security Assessment", "Methods for identifying vulnerabilities and testing security measures", 4, network.ID, crypto.ID); err != nil {
		return err
	}

	resources := []model.Resource{
		{TopicID: html.ID, Title: "MDN HTML Guide", URL: "https://developer.mozilla.org/en-US/docs/Web/HTML", Type: model.ResourceWeb},
		{TopicID: html.ID, Title: "HTML Crash Course", URL: "https://www.youtube.com/watch?v=UB1O30fR-EE", Type: model.ResourceVideo},
		{TopicID: css.ID, Title: "MDN CSS Reference", URL: "https://developer.mozilla.org/en-US/docs/Web/CSS", Type: model.ResourceWeb},
	}
	for i := range resources {
		if err := db.Create(&resources[i]).Error; err != nil {
			return err
		}
	}

	return seedQuizzes(db, html.ID, js.ID)
}

func seedQuizzes(db *gorm.DB, htmlTopicID, jsTopicID uint) error {
	htmlQuiz := &model.Quiz{
		TopicID:      htmlTopicID,
		Title:        "HTML Basics Quiz",
		Description:  "Test your knowledge of HTML fundamentals",
		Difficulty:   1,
		PointsToEarn: 10,
	}
	if err := db.Create(htmlQuiz).Error; err != nil {
		return err
	}

	jsQuiz := &model.Quiz{
		TopicID:      jsTopicID,
		Title:        "JavaScript Fundamentals Quiz",
		Description:  "Test your knowledge of JavaScript basics",
		Difficulty:   2,
		PointsToEarn: 15,
	}
	if err := db.Create(jsQuiz).Error; err != nil {
		return err
	}

	questions := []model.QuizQuestion{
		{
			QuizID:       htmlQuiz.ID,
			QuestionText: "What does HTML stand for?",
			QuestionType: model.MultipleChoice,
			Options: []string{
				"Hyper Text Markup Language",
				"High Tech Modern Language",
				"Hyper Transfer Markup Language",
				"Hyperlink Text Management Language",
			},
			CorrectAnswer: "Hyper Text Markup Language",
			Explanation:   "HTML stands for Hyper Text Markup Language, which is the standard markup language for creating web pages.",
		},
		{
			QuizID:       htmlQuiz.ID,
			QuestionText: "Which tag is used to create a hyperlink in HTML?",
			QuestionType: model.MultipleChoice,
			Options:      []string{"<link>", "<a>", "<href>", "<url>"},
			CorrectAnswer: "<a>",
			Explanation:   "The <a> (anchor) tag is used to create hyperlinks in HTML, typically with an href attribute that specifies the link's destination.",
		},
		{
			QuizID:        htmlQuiz.ID,
			QuestionText:  "HTML elements are nested within each other.",
			QuestionType:  model.TrueFalse,
			Options:       []string{"True", "False"},
			CorrectAnswer: "True",
			Explanation:   "HTML elements can contain other elements, creating a nested structure often referred to as the DOM (Document Object Model).",
		},
		{
			QuizID:       jsQuiz.ID,
			QuestionText: "Which of these is NOT a JavaScript data type?",
			QuestionType: model.MultipleChoice,
			Options:      []string{"String", "Boolean", "Integer", "Object"},
			CorrectAnswer: "Integer",
			Explanation:   "JavaScript doesn't have an Integer type specifically. It has Number, which includes both integers and floating-point values.",
		},
		{
			QuizID:        jsQuiz.ID,
			QuestionText:  "JavaScript is a case-sensitive language.",
			QuestionType:  model.TrueFalse,
			Options:       []string{"True", "False"},
			CorrectAnswer: "True",
			Explanation:   "JavaScript is case-sensitive, meaning that 'myVariable' and 'myvariable' would be treated as different variables.",
		},
	}
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAchievements(db *gorm.DB) error {
	var count int64
	db.Model(&model.Achievement{}).Count(&count)
	if count > 0 {
		return nil
	}

	defaults := []model.Achievement{
		{
			Title:       "Streak Master",
			Description: "Maintain a 7-day learning streak",
			Type:        model.AchievementStreak,
			Threshold:   7,
			Points:      100,
			BadgeURL:    "https://cdn-icons-png.flaticon.com/512/6941/6941697.png",
		},
		{
			Title:       "Topic Explorer",
			Description: "Complete 10 topics",
			Type:        model.AchievementTopicCompletion,
			Threshold:   10,
			Points:      150,
			BadgeURL:    "https://cdn-icons-png.flaticon.com/512/2910/2910824.png",
		},
		{
			Title:       "Course Champion",
			Description: "Complete an entire course",
			Type:        model.AchievementCourseCompletion,
			Threshold:   1,
			Points:      300,
			BadgeURL:    "https://cdn-icons-png.flaticon.com/512/2583/2583344.png",
		},
		{
			Title:       "Quiz Wizard",
			Description: "Achieve perfect scores on 5 quizzes",
			Type:        model.AchievementPerfectScore,
			Threshold:   5,
			Points:      200,
			BadgeURL:    "https://cdn-icons-png.flaticon.com/512/2228/2228087.png",
		},
		{
			Title:       "Quiz Master",
			Description: "Complete 10 quizzes",
			Type:        model.AchievementQuizMastery,
			Threshold:   10,
			Points:      150,
			BadgeURL:    "https://cdn-icons-png.flaticon.com/512/4207/4207253.png",
		},
	}
	for i := range defaults {
		if err := db.Create(&defaults[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
