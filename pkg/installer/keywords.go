package installer

// taskRule maps one task area to its trigger keywords and the agents worth
// installing for it. Rules are an ordered table so detection output is
// reproducible run to run.
type taskRule struct {
	Category string
	Keywords []string
	Agents   []string
}

// taskRules is matched in order against the lowercased prompt; each rule
// fires at most once.
var taskRules = []taskRule{
	// Languages
	{
		Category: "python",
		Keywords: []string{"python", "py", "pip", "poetry", "venv", "requirements.txt"},
		Agents:   []string{"python-pro", "python-expert", "python-backend-engineer"},
	},
	{
		Category: "javascript",
		Keywords: []string{"javascript", "js", "node", "npm", "yarn", "pnpm", "package.json"},
		Agents:   []string{"javascript-pro", "nodejs-expert"},
	},
	{
		Category: "typescript",
		Keywords: []string{"typescript", "ts", "tsx", "types", "interface", "tsconfig"},
		Agents:   []string{"typescript-pro"},
	},
	{
		Category: "react",
		Keywords: []string{"react", "jsx", "hooks", "component", "useState", "useEffect", "redux", "create react"},
		Agents:   []string{"react-pro", "frontend-developer", "typescript-pro"},
	},
	{
		Category: "vue",
		Keywords: []string{"vue", "vuex", "pinia", "composition", "vuetify", "nuxt"},
		Agents:   []string{"vue-expert", "frontend-developer"},
	},
	{
		Category: "angular",
		Keywords: []string{"angular", "ng", "rxjs", "ngrx", "decorator"},
		Agents:   []string{"angular-architect", "frontend-developer"},
	},

	// Frameworks
	{
		Category: "fastapi",
		Keywords: []string{"fastapi", "pydantic", "uvicorn", "async", "await"},
		Agents:   []string{"python-pro", "python-backend-engineer", "api-designer"},
	},
	{
		Category: "django",
		Keywords: []string{"django", "drf", "orm", "models", "views", "migrations"},
		Agents:   []string{"django-developer", "python-backend-engineer"},
	},
	{
		Category: "flask",
		Keywords: []string{"flask", "werkzeug", "jinja", "blueprint"},
		Agents:   []string{"python-pro", "python-backend-engineer"},
	},
	{
		Category: "express",
		Keywords: []string{"express", "middleware", "router", "app.get", "app.post"},
		Agents:   []string{"express-expert", "nodejs-expert", "backend-architect"},
	},
	{
		Category: "nextjs",
		Keywords: []string{"next", "nextjs", "vercel", "ssr", "ssg", "app router"},
		Agents:   []string{"nextjs-developer", "react-pro", "frontend-developer"},
	},

	// Tasks
	{
		Category: "testing",
		Keywords: []string{"test", "testing", "tdd", "bdd", "unit", "integration", "e2e", "jest", "pytest", "vitest"},
		Agents:   []string{"test-automator", "qa-expert", "testing-implementation-agent"},
	},
	{
		Category: "debugging",
		Keywords: []string{"debug", "fix", "bug", "error", "issue", "troubleshoot", "diagnose", "problem"},
		Agents:   []string{"debugger", "error-detective", "troubleshooter"},
	},
	{
		Category: "refactoring",
		Keywords: []string{"refactor", "optimize", "clean", "improve", "performance", "restructure", "cleanup"},
		Agents:   []string{"refactoring-specialist", "code-refactorer-agent", "performance-engineer"},
	},
	{
		Category: "security",
		Keywords: []string{"security", "audit", "vulnerability", "penetration", "xss", "csrf", "injection", "auth"},
		Agents:   []string{"security-auditor", "security-engineer"},
	},
	{
		Category: "deployment",
		Keywords: []string{"deploy", "ci", "cd", "pipeline", "docker", "kubernetes", "k8s", "helm", "aws", "azure"},
		Agents:   []string{"deployment-engineer", "devops-engineer", "containerize-application", "kubernetes-specialist", "cloud-architect"},
	},
	{
		Category: "database",
		Keywords: []string{"database", "sql", "nosql", "postgres", "mysql", "mongodb", "redis", "query", "migration"},
		Agents:   []string{"database-optimizer", "sql-pro", "postgres-pro", "mongodb-expert"},
	},
	{
		Category: "api",
		Keywords: []string{"api", "rest", "graphql", "grpc", "websocket", "endpoint", "swagger", "openapi"},
		Agents:   []string{"api-designer", "api-documenter", "graphql-architect", "websocket-engineer"},
	},
}
