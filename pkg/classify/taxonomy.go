// Package classify assigns (category, subcategory) labels to agent records
// by weighted keyword matching against an ordered taxonomy.
package classify

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Subcategory is one leaf of the taxonomy with the keywords that vote for it.
type Subcategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Category is a top-level taxonomy entry. Declaration order is significant:
// earlier entries win non-zero score ties, so the taxonomy is a slice rather
// than a map.
type Category struct {
	Name          string        `yaml:"category"`
	Subcategories []Subcategory `yaml:"subcategories"`
}

// Taxonomy is the ordered category table driving classification.
type Taxonomy []Category

// DefaultTaxonomy is the built-in taxonomy covering the agent corpus:
// programming languages first, then frameworks, task-oriented agents, and
// specialized domains.
var DefaultTaxonomy = Taxonomy{
	{Name: "languages", Subcategories: []Subcategory{
		{Name: "python", Keywords: []string{"python", "py", "pip", "django", "flask", "fastapi"}},
		{Name: "javascript", Keywords: []string{"javascript", "js", "node", "npm"}},
		{Name: "typescript", Keywords: []string{"typescript", "ts", "tsx"}},
		{Name: "java", Keywords: []string{"java", "spring", "maven"}},
		{Name: "csharp", Keywords: []string{"c#", "csharp", "dotnet", ".net"}},
		{Name: "cpp", Keywords: []string{"c++", "cpp", "cmake"}},
		{Name: "rust", Keywords: []string{"rust", "cargo"}},
		{Name: "go", Keywords: []string{"go", "golang"}},
		{Name: "ruby", Keywords: []string{"ruby", "rails"}},
		{Name: "php", Keywords: []string{"php", "laravel"}},
		{Name: "swift", Keywords: []string{"swift", "ios"}},
		{Name: "kotlin", Keywords: []string{"kotlin", "android"}},
	}},
	{Name: "frameworks", Subcategories: []Subcategory{
		{Name: "react", Keywords: []string{"react", "jsx", "hooks"}},
		{Name: "vue", Keywords: []string{"vue", "vuex", "pinia"}},
		{Name: "angular", Keywords: []string{"angular", "rxjs"}},
		{Name: "nextjs", Keywords: []string{"next", "nextjs", "vercel"}},
		{Name: "express", Keywords: []string{"express", "nodejs"}},
		{Name: "django", Keywords: []string{"django", "drf"}},
		{Name: "flask", Keywords: []string{"flask", "werkzeug"}},
		{Name: "fastapi", Keywords: []string{"fastapi", "pydantic"}},
		{Name: "spring", Keywords: []string{"spring", "boot"}},
		{Name: "rails", Keywords: []string{"rails", "activerecord"}},
	}},
	{Name: "tasks", Subcategories: []Subcategory{
		{Name: "testing", Keywords: []string{"test", "testing", "tdd", "bdd", "jest", "pytest", "unit"}},
		{Name: "debugging", Keywords: []string{"debug", "fix", "bug", "error", "troubleshoot"}},
		{Name: "refactoring", Keywords: []string{"refactor", "optimize", "clean", "improve"}},
		{Name: "security", Keywords: []string{"security", "audit", "vulnerability", "penetration"}},
		{Name: "review", Keywords: []string{"review", "code review", "quality"}},
		{Name: "documentation", Keywords: []string{"document", "docs", "readme", "api"}},
		{Name: "deployment", Keywords: []string{"deploy", "ci/cd", "docker", "kubernetes"}},
		{Name: "automation", Keywords: []string{"automate", "automation", "workflow", "pipeline"}},
	}},
	{Name: "specialized", Subcategories: []Subcategory{
		{Name: "devops", Keywords: []string{"devops", "infrastructure", "terraform", "ansible"}},
		{Name: "data", Keywords: []string{"data", "analysis", "ml", "ai", "science", "pandas"}},
		{Name: "mobile", Keywords: []string{"mobile", "ios", "android", "react-native", "flutter"}},
		{Name: "cloud", Keywords: []string{"aws", "azure", "gcp", "cloud", "serverless"}},
		{Name: "database", Keywords: []string{"database", "sql", "nosql", "postgres", "mongodb"}},
		{Name: "frontend", Keywords: []string{"frontend", "ui", "ux", "css", "design"}},
		{Name: "backend", Keywords: []string{"backend", "api", "server", "microservice"}},
		{Name: "blockchain", Keywords: []string{"blockchain", "crypto", "web3", "solidity"}},
		{Name: "game", Keywords: []string{"game", "unity", "unreal", "godot"}},
		{Name: "iot", Keywords: []string{"iot", "embedded", "arduino", "raspberry"}},
	}},
}

// LoadTaxonomy reads a taxonomy override from a YAML file. The file is an
// ordered list of categories, mirroring the shape of DefaultTaxonomy, so
// declaration order stays under the curator's control.
func LoadTaxonomy(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read taxonomy file %q", path)
	}

	var taxonomy Taxonomy
	if err := yaml.Unmarshal(data, &taxonomy); err != nil {
		return nil, errors.Wrapf(err, "failed to parse taxonomy file %q", path)
	}
	if len(taxonomy) == 0 {
		return nil, errors.Errorf("taxonomy file %q defines no categories", path)
	}

	for _, category := range taxonomy {
		if category.Name == "" {
			return nil, errors.Errorf("taxonomy file %q contains a category without a name", path)
		}
		if len(category.Subcategories) == 0 {
			return nil, errors.Errorf("taxonomy category %q has no subcategories", category.Name)
		}
	}

	return taxonomy, nil
}
