package classify

import (
	"strings"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
)

// quickSignalLen bounds the content considered by QuickClassify.
const quickSignalLen = 500

// quickLanguages and quickTasks are the smaller tables used by the quick
// first-match mode. Order matters: the first subcategory with any keyword hit
// wins outright.
var quickLanguages = []Subcategory{
	{Name: "python", Keywords: []string{"python", "py", "django", "flask"}},
	{Name: "javascript", Keywords: []string{"javascript", "js", "node", "react", "vue"}},
	{Name: "typescript", Keywords: []string{"typescript", "ts", "angular"}},
	{Name: "java", Keywords: []string{"java", "spring"}},
	{Name: "csharp", Keywords: []string{"c#", "csharp", "dotnet"}},
	{Name: "rust", Keywords: []string{"rust", "cargo"}},
	{Name: "go", Keywords: []string{"go", "golang"}},
	{Name: "ruby", Keywords: []string{"ruby", "rails"}},
	{Name: "php", Keywords: []string{"php", "laravel"}},
}

var quickTasks = []Subcategory{
	{Name: "testing", Keywords: []string{"test", "tdd", "jest", "pytest"}},
	{Name: "debugging", Keywords: []string{"debug", "fix", "bug"}},
	{Name: "refactoring", Keywords: []string{"refactor", "optimize", "clean"}},
	{Name: "security", Keywords: []string{"security", "audit", "vulnerability"}},
	{Name: "deployment", Keywords: []string{"deploy", "ci/cd", "docker"}},
	{Name: "documentation", Keywords: []string{"document", "docs", "readme"}},
}

var (
	quickFrontend = []string{"react", "vue", "angular", "next", "nuxt"}
	quickBackend  = []string{"express", "fastapi", "django", "flask"}
)

// QuickClassify is the lighter-weight first-match variant: it returns on the
// first subcategory whose any keyword appears in the combined name and
// opening content. It trades the weighted mode's precision for speed and can
// disagree with Classify on ambiguous input; the weighted mode is the
// pipeline default.
func QuickClassify(rec *agent.Record) (category, subcategory string) {
	content := rec.BodyContent
	if len(content) > quickSignalLen {
		content = content[:quickSignalLen]
	}
	combined := strings.ToLower(rec.DisplayName) + " " + strings.ToLower(content)

	for _, sub := range quickLanguages {
		if containsAny(combined, sub.Keywords) {
			return "languages", sub.Name
		}
	}
	for _, sub := range quickTasks {
		if containsAny(combined, sub.Keywords) {
			return "tasks", sub.Name
		}
	}
	if containsAny(combined, quickFrontend) {
		return "frameworks", "frontend"
	}
	if containsAny(combined, quickBackend) {
		return "frameworks", "backend"
	}

	return agent.DefaultCategory, agent.DefaultSubcategory
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
