package classify

import "github.com/poiesic/issuescout/core"

// Levels lists the classifiable experience levels in comparison order.
// Ties between mean similarities resolve to the earlier level.
var Levels = []core.ExperienceLevel{
	core.LevelBeginner,
	core.LevelIntermediate,
	core.LevelAdvanced,
}

// DefaultReferences holds the exemplar phrases each experience level is
// compared against. A profile is classified as the level whose exemplars
// it is most similar to on average.
var DefaultReferences = map[core.ExperienceLevel][]string{
	core.LevelBeginner: {
		"just started learning to code with basic syntax",
		"new to programming and learning fundamentals",
		"learning Python and understanding variables and loops",
		"basic knowledge of functions and simple data types",
		"student just starting my first programming course",
		"finished my first coding bootcamp and need practice",
		"been coding for only a few months",
		"understand basic syntax but struggle with complex logic",
		"enjoy solving simple algorithmic problems",
		"want beginner-friendly issues to learn from real projects",
	},
	core.LevelIntermediate: {
		// Production experience
		"shipped production code",
		"deployed applications to servers",
		"managed live systems",
		"fixed production bugs",
		"maintained deployed apps",
		"scaled applications",

		// APIs & Databases
		"build REST APIs",
		"created multiple endpoints",
		"queried databases efficiently",
		"optimized SQL queries",
		"worked with ORMs",
		"handled database migrations",
		"designed API schemas",
		"implemented caching layers",

		// Testing & Quality
		"wrote unit tests",
		"created integration tests",
		"achieved code coverage",
		"automated testing workflows",
		"used testing frameworks",
		"debugged complex issues",
		"fixed race conditions",
		"tested edge cases",

		// Code & Architecture
		"refactored legacy code",
		"applied design patterns",
		"used SOLID principles",
		"implemented MVC architecture",
		"separated concerns properly",
		"modularized code effectively",
		"documented code well",
		"reviewed pull requests",

		// Development Practices
		"used version control daily",
		"handled merge conflicts",
		"created meaningful commits",
		"maintained feature branches",
		"collaborated in teams",
		"communicated with developers",
		"followed coding standards",
		"met project deadlines",

		// Web Development
		"built full-stack features",
		"created responsive designs",
		"optimized frontend performance",
		"handled state management",
		"worked with frameworks",
		"integrated APIs",
		"improved user experience",

		// Data & Performance
		"optimized query performance",
		"debugged memory leaks",
		"profiled code bottlenecks",
		"improved load times",
		"reduced database calls",
		"implemented indexing strategies",
		"cached frequently used data",

		// DevOps & Tools
		"configured deployment pipelines",
		"automated build processes",
		"monitored application health",
		"handled error logging",
		"set up monitoring alerts",
		"managed configurations",
		"used containerization",

		// Problem Solving
		"solved real-world problems",
		"debugged production issues",
		"researched technical solutions",
		"experimented with new tools",
		"learned from code reviews",
		"improved existing systems",
		"identified performance issues",
	},
	core.LevelAdvanced: {
		"architect distributed microservices handling millions of transactions",
		"lead engineering teams and make critical infrastructure decisions",
		"optimize performance for high-traffic systems and handle scale",
		"design and implement distributed systems with consensus algorithms",
		"expert in system architecture and technical strategy",
		"build microservices with message queues and event-driven architecture",
		"manage Kubernetes clusters and DevOps infrastructure at enterprise scale",
		"mentor senior developers and conduct architectural reviews",
		"maintain core libraries and frameworks used by thousands",
		"solve complex algorithmic problems and understand advanced data structures",
	},
}
