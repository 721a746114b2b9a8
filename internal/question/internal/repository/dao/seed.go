// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/google/uuid"
)

// Seed 题库为空的时候写入内置的题目
func Seed(ctx context.Context, d QuestionDAO) error {
	cnt, err := d.Count(ctx, Filter{})
	if err != nil || cnt > 0 {
		return err
	}
	qs := SeedQuestions()
	for i := range qs {
		qs[i].Uuid = uuid.NewString()
		qs[i].IsActive = true
	}
	return d.BatchInsert(ctx, qs)
}

func jsonList(vals ...string) sqlx.JsonColumn[[]string] {
	return sqlx.JsonColumn[[]string]{Val: vals, Valid: len(vals) > 0}
}

// SeedQuestions 内置题目，按照领域和分类排列
func SeedQuestions() []Question {
	return []Question{
		// 软件开发
		{
			Text:        "Explain the difference between let, const, and var in JavaScript. When would you use each?",
			Category:    "technical",
			Subcategory: "javascript",
			Field:       "software",
			Level:       "intermediate",
			Difficulty:  "medium",
			Tags:        jsonList("javascript", "fundamentals", "es6", "variables"),
			Keywords:    jsonList("let", "const", "var", "scope", "hoisting"),
			Hint:        "Think about scope, hoisting, and reassignment capabilities",
			EvaluationCriteria: jsonList("scope understanding", "hoisting knowledge",
				"practical examples", "best practices"),
			FollowUpQuestions: jsonList("What happens if you try to redeclare a let variable?",
				"Can you explain temporal dead zone?"),
			IdealAnswerLength: 150,
			TimeLimit:         300,
		},
		{
			Text:       "What is a closure in JavaScript? Provide a practical use case.",
			Category:   "technical",
			Field:      "software",
			Level:      "intermediate",
			Difficulty: "medium",
			Tags:       jsonList("javascript", "closures", "advanced"),
			Hint:       "Consider data privacy and function factories",
		},
		{
			Text:       "Explain the SOLID principles in object-oriented programming.",
			Category:   "technical",
			Field:      "software",
			Level:      "senior",
			Difficulty: "hard",
			Tags:       jsonList("oop", "design-patterns", "solid"),
			Hint:       "Each letter stands for a different principle",
		},
		{
			Text:        "What is the difference between SQL and NoSQL databases? When would you choose one over the other? Provide specific examples.",
			Category:    "technical",
			Subcategory: "databases",
			Field:       "software",
			Level:       "intermediate",
			Difficulty:  "medium",
			Tags:        jsonList("databases", "sql", "nosql", "data-modeling"),
			Keywords:    jsonList("SQL", "NoSQL", "relational", "document", "ACID", "CAP"),
			Hint:        "Think about data structure, scalability, ACID properties, and use cases",
			EvaluationCriteria: jsonList("Understanding of SQL databases", "Understanding of NoSQL types",
				"Trade-offs discussion", "Real-world examples", "Performance considerations"),
			IdealAnswerLength: 200,
			TimeLimit:         420,
		},
		{
			Text:       "Explain how RESTful APIs work and what makes an API RESTful.",
			Category:   "technical",
			Field:      "software",
			Level:      "intermediate",
			Difficulty: "medium",
			Tags:       jsonList("api", "rest", "http"),
			Hint:       "Consider HTTP methods, statelessness, and resource naming",
		},
		// 数据科学
		{
			Text:       "What is overfitting in machine learning and how can you prevent it?",
			Category:   "technical",
			Field:      "data-science",
			Level:      "intermediate",
			Difficulty: "medium",
			Tags:       jsonList("ml", "overfitting", "validation"),
			Hint:       "Think about model complexity and validation techniques",
		},
		{
			Text:        "Explain the bias-variance tradeoff in machine learning. How does it affect model performance?",
			Category:    "technical",
			Subcategory: "machine-learning",
			Field:       "data-science",
			Level:       "senior",
			Difficulty:  "hard",
			Tags:        jsonList("ml", "statistics", "model-evaluation", "theory"),
			Keywords:    jsonList("bias", "variance", "overfitting", "underfitting", "model-complexity"),
			Hint:        "Consider the relationship between model complexity, training error, and test error",
			EvaluationCriteria: jsonList("Bias definition and examples", "Variance definition and examples",
				"Trade-off explanation", "Impact on model performance", "Solutions to balance"),
			IdealAnswerLength: 180,
			TimeLimit:         480,
		},
		{
			Text:       "What is the difference between supervised and unsupervised learning?",
			Category:   "technical",
			Field:      "data-science",
			Level:      "entry",
			Difficulty: "easy",
			Tags:       jsonList("ml", "fundamentals"),
			Hint:       "Think about labeled vs unlabeled data",
		},
		{
			Text:       "Explain how a Random Forest algorithm works.",
			Category:   "technical",
			Field:      "data-science",
			Level:      "intermediate",
			Difficulty: "medium",
			Tags:       jsonList("ml", "algorithms", "ensemble"),
			Hint:       "Consider decision trees and ensemble methods",
		},
		// 行为面
		{
			Text:        "Tell me about a time when you had to work with a difficult team member. How did you handle the situation and what was the outcome?",
			Category:    "behavioral",
			Subcategory: "teamwork",
			Field:       "general",
			Level:       "entry",
			Difficulty:  "medium",
			Tags:        jsonList("teamwork", "conflict-resolution", "communication", "STAR"),
			Keywords:    jsonList("conflict", "team", "resolution", "communication"),
			Hint:        "Use the STAR method: Situation, Task, Action, Result. Focus on your actions and positive outcomes.",
			EvaluationCriteria: jsonList("STAR structure", "Clear situation description", "Specific actions taken",
				"Measurable results", "Self-awareness", "Professional maturity"),
			IdealAnswerLength: 200,
			TimeLimit:         360,
		},
		{
			Text:        "Describe a project where you had to learn a new technology quickly under a tight deadline. What was your approach?",
			Category:    "behavioral",
			Subcategory: "learning",
			Field:       "general",
			Level:       "intermediate",
			Difficulty:  "medium",
			Tags:        jsonList("learning", "adaptability", "time-management", "resourcefulness"),
			Keywords:    jsonList("learning", "deadline", "technology", "approach"),
			Hint:        "Emphasize your learning process, resources used, and how you delivered despite challenges",
			EvaluationCriteria: jsonList("Learning strategy", "Time management", "Resource utilization",
				"Results achieved", "Lessons learned"),
			IdealAnswerLength: 180,
			TimeLimit:         360,
		},
		{
			Text:       "Give me an example of a time when you failed. What did you learn from it?",
			Category:   "behavioral",
			Field:      "general",
			Level:      "entry",
			Difficulty: "medium",
			Tags:       jsonList("failure", "growth", "self-awareness"),
			Hint:       "Show accountability and growth mindset",
		},
		{
			Text:       "Tell me about a time when you had to make a difficult decision with incomplete information.",
			Category:   "behavioral",
			Field:      "general",
			Level:      "senior",
			Difficulty: "hard",
			Tags:       jsonList("decision-making", "leadership"),
			Hint:       "Explain your decision-making framework",
		},
		// 系统设计
		{
			Text:        "Design a scalable URL shortening service like bit.ly. Explain your architecture, database design, and how you would handle 1 million requests per day.",
			Category:    "system-design",
			Subcategory: "scalability",
			Field:       "software",
			Level:       "senior",
			Difficulty:  "hard",
			Tags:        jsonList("system-design", "scalability", "databases", "distributed-systems"),
			Keywords:    jsonList("architecture", "scalability", "database", "caching", "load-balancing"),
			Hint:        "Consider URL generation algorithms, database sharding, caching strategies, and CDN usage",
			EvaluationCriteria: jsonList("System architecture design", "Database schema design",
				"Scalability considerations", "Caching strategy", "Load balancing", "Analytics implementation"),
			FollowUpQuestions: jsonList("How would you prevent URL collisions?",
				"How would you implement analytics tracking?", "What database would you choose and why?"),
			IdealAnswerLength: 300,
			TimeLimit:         900,
		},
		{
			Text:       "Design a social media news feed system like Twitter or Facebook.",
			Category:   "system-design",
			Field:      "software",
			Level:      "senior",
			Difficulty: "hard",
			Tags:       jsonList("system-design", "distributed-systems"),
			Hint:       "Consider fan-out strategies, caching, and real-time updates",
		},
		// HR
		{
			Text:       "Why do you want to work for our company?",
			Category:   "hr",
			Field:      "general",
			Level:      "entry",
			Difficulty: "easy",
			Tags:       jsonList("motivation", "company-fit"),
			Hint:       "Research the company and align with their values",
		},
		{
			Text:       "Where do you see yourself in 5 years?",
			Category:   "hr",
			Field:      "general",
			Level:      "entry",
			Difficulty: "easy",
			Tags:       jsonList("career-goals", "ambition"),
			Hint:       "Show ambition while being realistic",
		},
		{
			Text:       "What is your greatest strength and weakness?",
			Category:   "hr",
			Field:      "general",
			Level:      "entry",
			Difficulty: "easy",
			Tags:       jsonList("self-awareness", "personal-development"),
			Hint:       "Be honest and show how you're working on your weakness",
		},
		{
			Text:       "Why are you leaving your current job?",
			Category:   "hr",
			Field:      "general",
			Level:      "intermediate",
			Difficulty: "medium",
			Tags:       jsonList("career-transition", "motivation"),
			Hint:       "Focus on what you're looking for, not what you're running from",
		},
		// 产品
		{
			Text:       "How would you prioritize features for a product roadmap?",
			Category:   "product",
			Field:      "product",
			Level:      "intermediate",
			Difficulty: "medium",
			Tags:       jsonList("product-management", "prioritization"),
			Hint:       "Consider frameworks like RICE or MoSCoW",
		},
		{
			Text:       "How would you measure the success of a new feature?",
			Category:   "product",
			Field:      "product",
			Level:      "intermediate",
			Difficulty: "medium",
			Tags:       jsonList("metrics", "kpis", "product-management"),
			Hint:       "Think about user engagement, business impact, and leading/lagging indicators",
		},
	}
}
