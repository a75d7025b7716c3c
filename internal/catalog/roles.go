package catalog

// RoleProfile describes one target job role: the description text the matcher
// scores against and the keywords a resume is expected to contain. Keywords
// are stored lowercase because all matching is case-insensitive.
type RoleProfile struct {
	Name             string
	Description      string
	RequiredKeywords []string
}

// roles is the compiled-in catalogue. Order is significant: ranking ties
// break by position in this slice.
var roles = []RoleProfile{
	{
		Name:        "Data Analyst",
		Description: "Responsible for analyzing data, building dashboards, writing SQL queries, and delivering insights using tools like Python, Power BI, and Excel.",
		RequiredKeywords: []string{
			"sql", "excel", "python", "power bi", "data visualization",
			"statistics", "dashboard", "data cleaning",
		},
	},
	{
		Name:        "Customer Support",
		Description: "Handles customer issues via email or phone, uses CRM tools, ensures customer satisfaction, and communicates empathetically.",
		RequiredKeywords: []string{
			"crm", "customer service", "ticketing", "communication",
			"email", "phone support", "problem resolution",
		},
	},
	{
		Name:        "HR",
		Description: "Involved in recruitment, employee onboarding, payroll, enforcing HR policies, and managing employee relations.",
		RequiredKeywords: []string{
			"recruitment", "onboarding", "payroll", "employee relations",
			"compliance", "hr policies",
		},
	},
	{
		Name:        "Python Developer",
		Description: "Develops backend systems using Python, builds APIs, works with Flask or Django, and writes clean, efficient code.",
		RequiredKeywords: []string{
			"python", "flask", "django", "rest api", "oop",
			"unit testing", "git", "debugging",
		},
	},
	{
		Name:        "Power BI Analyst",
		Description: "Creates dashboards and reports using Power BI, performs data modeling, DAX calculations, and collaborates with business teams.",
		RequiredKeywords: []string{
			"power bi", "dax", "data modeling", "dashboard", "kpi",
			"visualization", "m query",
		},
	},
	{
		Name:        "Admin",
		Description: "Supports office tasks such as scheduling, data entry, communication, and administrative coordination.",
		RequiredKeywords: []string{
			"scheduling", "data entry", "ms office", "reporting",
			"documentation", "clerical",
		},
	},
}

var roleIndex = func() map[string]int {
	m := make(map[string]int, len(roles))
	for i, r := range roles {
		m[r.Name] = i
	}
	return m
}()

// Roles returns the catalogue in insertion order.
func Roles() []RoleProfile {
	return roles
}

// RoleNames returns the catalogue role names in insertion order.
func RoleNames() []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.Name
	}
	return names
}

// FindRole returns the profile for name, or ok=false when the name is not in
// the catalogue.
func FindRole(name string) (RoleProfile, bool) {
	i, ok := roleIndex[name]
	if !ok {
		return RoleProfile{}, false
	}
	return roles[i], true
}

// RolePosition returns the catalogue position of name, or -1 when unknown.
func RolePosition(name string) int {
	if i, ok := roleIndex[name]; ok {
		return i
	}
	return -1
}
