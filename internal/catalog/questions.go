package catalog

// questionBank holds the mock interview questions per role. Interview roles
// are a separate set from the resume catalogue: the simulator covers a few
// roles the matcher does not score and vice versa.
var questionBank = map[string][]string{
	"Data Analyst": {
		"What is the difference between INNER JOIN and LEFT JOIN in SQL?",
		"Explain the steps you take when cleaning a dataset.",
		"How would you handle missing values in a dataset?",
		"Describe a project where you used data visualization to drive decisions.",
		"What is the difference between correlation and causation?",
		"How do you approach cleaning and preparing a large dataset for analysis?",
		"Can you describe a time you used data to solve a business problem or make a recommendation?",
		"What's the most complex dashboard or report you've built, and how did it support decision-making?",
	},
	"Data Scientist": {
		"Explain the difference between supervised and unsupervised learning.",
		"What's your approach to feature engineering?",
		"How do you evaluate the performance of a machine learning model?",
		"Describe a project where you used machine learning to solve a problem.",
		"What's the difference between overfitting and underfitting?",
		"How do you ensure your model is not overfitting?",
		"Tell me about a time when your analysis or model directly influenced a business decision.",
	},
	"Python Developer": {
		"What are Python decorators and how are they used?",
		"Explain the difference between a list, tuple, and set.",
		"How do you handle exceptions in Python?",
		"Describe your experience with web frameworks like Flask or Django.",
		"What are Python generators and why are they useful?",
		"Can you explain the difference between deep copy and shallow copy in Python?",
		"Describe a project where you used Python to automate a task or process.",
		"How do you manage dependencies and environments in a Python project?",
	},
	"Customer Care Assistant": {
		"How do you handle a difficult customer?",
		"What strategies do you use to remain calm under pressure?",
		"Describe a time you went above and beyond to assist a customer.",
		"How do you handle repetitive tasks and remain motivated?",
		"What would you do if you didn't know how to answer a customer's question?",
	},
	"Administrative Assistant": {
		"How do you prioritize tasks when managing multiple deadlines?",
		"Describe your experience with calendar management and scheduling.",
		"How do you handle confidential information?",
		"Describe a time you improved an administrative process.",
		"What tools or software are you most comfortable using for admin work?",
	},
	"HR": {
		"How do you handle conflicts between employees?",
		"Describe your experience with recruitment and onboarding.",
		"What steps do you take to ensure HR policies are followed?",
		"How do you maintain confidentiality in sensitive HR matters?",
		"What's your approach to employee engagement and retention?",
	},
}

// InterviewRoles returns the roles the simulator has questions for.
func InterviewRoles() []string {
	// Stable order for API responses.
	return []string{
		"Data Analyst",
		"Data Scientist",
		"Python Developer",
		"Customer Care Assistant",
		"Administrative Assistant",
		"HR",
	}
}

// QuestionsFor returns the question list for role, or ok=false when the
// simulator has no questions for it.
func QuestionsFor(role string) ([]string, bool) {
	qs, ok := questionBank[role]
	return qs, ok
}
