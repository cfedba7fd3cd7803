// Package installer analyzes a task prompt, suggests matching agents from
// the collection index, and copies them into a project's .claude/agents
// directory. Previously installed agents are tracked in a per-project cache
// file loaded once at startup and saved once after installation.
package installer

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/collection"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/logger"
)

const (
	cacheFileName = "agent-cache.json"
	agentsDirName = "agents"
	claudeDirName = ".claude"

	// maxInstallPerRun bounds one auto-install pass.
	maxInstallPerRun = 5
)

// Analysis is the outcome of matching a prompt against the task rules.
type Analysis struct {
	Categories      []string `json:"categories"`
	SuggestedAgents []string `json:"suggested_agents"`
	KeywordsFound   []string `json:"keywords_found"`
}

// Result summarizes one auto-install run.
type Result struct {
	Prompt          string   `json:"prompt"`
	Analysis        Analysis `json:"analysis"`
	AgentsInstalled []string `json:"agents_installed"`
	AgentsSkipped   []string `json:"agents_skipped"`
	Message         string   `json:"message"`
}

// cacheFile is the persisted install cache format.
type cacheFile struct {
	Installed []string `json:"installed"`
}

// Installer installs agents from a collection into a project.
type Installer struct {
	projectDir    string
	collectionDir string
	index         *collection.Index
	installed     map[string]bool
}

// New creates an Installer for the given project, sourcing agent files from
// collectionDir and metadata from index. The install cache is loaded here;
// Save persists it after changes.
func New(projectDir, collectionDir string, index *collection.Index) *Installer {
	inst := &Installer{
		projectDir:    projectDir,
		collectionDir: collectionDir,
		index:         index,
		installed:     map[string]bool{},
	}
	inst.loadCache()
	return inst
}

// AnalyzePrompt matches the prompt against the task rules. Each rule fires
// on its first matching keyword only, and suggestions keep first-seen order.
func AnalyzePrompt(prompt string) Analysis {
	promptLower := strings.ToLower(prompt)
	analysis := Analysis{
		Categories:      []string{},
		SuggestedAgents: []string{},
		KeywordsFound:   []string{},
	}

	seen := map[string]bool{}
	for _, rule := range taskRules {
		for _, keyword := range rule.Keywords {
			if !strings.Contains(promptLower, keyword) {
				continue
			}
			analysis.Categories = append(analysis.Categories, rule.Category)
			analysis.KeywordsFound = append(analysis.KeywordsFound, keyword)
			for _, name := range rule.Agents {
				if !seen[name] {
					seen[name] = true
					analysis.SuggestedAgents = append(analysis.SuggestedAgents, name)
				}
			}
			break
		}
	}
	return analysis
}

// FindAgent looks an agent up in the index by name, accepting containment in
// either direction so "python" finds "python-pro".
func (inst *Installer) FindAgent(name string) *collection.Entry {
	if inst.index == nil {
		return nil
	}
	nameLower := strings.ToLower(name)
	for i := range inst.index.Agents {
		entryLower := strings.ToLower(inst.index.Agents[i].Name)
		if strings.Contains(entryLower, nameLower) || strings.Contains(nameLower, entryLower) {
			return &inst.index.Agents[i]
		}
	}
	return nil
}

// Install copies the named agents into the project. Agents missing from the
// index or the collection tree are skipped with a warning; files already in
// the project are never overwritten. Returns the names actually installed.
func (inst *Installer) Install(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	log := logger.G(ctx)

	destDir := inst.agentsDir()
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create agents directory")
	}

	var installed []string
	for _, name := range names {
		entry := inst.FindAgent(name)
		if entry == nil {
			log.WithField("agent", name).Warn("Agent not in index, skipping")
			continue
		}

		src := filepath.Join(inst.collectionDir, collection.AgentsDir, filepath.FromSlash(entry.Path))
		dest := filepath.Join(destDir, filepath.Base(entry.Path))

		if _, err := os.Stat(dest); err == nil {
			log.WithField("agent", name).Debug("Agent file already present, skipping")
			continue
		}

		if err := copyFile(src, dest); err != nil {
			log.WithField("agent", name).WithError(err).Warn("Failed to install agent, skipping")
			continue
		}

		installed = append(installed, name)
		inst.installed[name] = true
		log.WithField("agent", name).Info("Installed agent")
	}
	return installed, nil
}

// AutoInstall analyzes the prompt and installs up to maxInstallPerRun new
// suggested agents, then persists the cache.
func (inst *Installer) AutoInstall(ctx context.Context, prompt string) (*Result, error) {
	result := &Result{
		Prompt:          prompt,
		Analysis:        AnalyzePrompt(prompt),
		AgentsInstalled: []string{},
		AgentsSkipped:   []string{},
	}

	if len(result.Analysis.SuggestedAgents) == 0 {
		result.Message = "No specific agents identified for this task"
		return result, nil
	}

	var toInstall []string
	for _, name := range result.Analysis.SuggestedAgents {
		if inst.installed[name] {
			result.AgentsSkipped = append(result.AgentsSkipped, name)
		} else {
			toInstall = append(toInstall, name)
		}
	}

	if len(toInstall) == 0 {
		result.Message = "All suggested agents already installed"
		return result, nil
	}
	if len(toInstall) > maxInstallPerRun {
		toInstall = toInstall[:maxInstallPerRun]
	}

	installed, err := inst.Install(ctx, toInstall)
	if err != nil {
		return nil, err
	}
	result.AgentsInstalled = installed

	if len(installed) > 0 {
		if err := inst.Save(); err != nil {
			return nil, err
		}
		result.Message = "Successfully installed new agents"
	} else {
		result.Message = "No new agents installed"
	}
	return result, nil
}

// ListInstalled returns the agent file stems present in the project's agents
// directory, sorted.
func (inst *Installer) ListInstalled() []string {
	entries, err := os.ReadDir(inst.agentsDir())
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Save persists the install cache.
func (inst *Installer) Save() error {
	names := make([]string, 0, len(inst.installed))
	for name := range inst.installed {
		names = append(names, name)
	}
	sort.Strings(names)

	data, err := json.MarshalIndent(cacheFile{Installed: names}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode install cache")
	}

	path := inst.cachePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create cache directory")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "failed to write install cache")
	}
	return nil
}

func (inst *Installer) loadCache() {
	data, err := os.ReadFile(inst.cachePath())
	if err != nil {
		return
	}
	var cache cacheFile
	if err := json.Unmarshal(data, &cache); err != nil {
		return
	}
	for _, name := range cache.Installed {
		inst.installed[name] = true
	}
}

func (inst *Installer) cachePath() string {
	return filepath.Join(inst.projectDir, claudeDirName, cacheFileName)
}

func (inst *Installer) agentsDir() string {
	return filepath.Join(inst.projectDir, claudeDirName, agentsDirName)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "failed to open source file")
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return errors.Wrap(err, "failed to create destination file")
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrap(err, "failed to copy agent file")
	}
	return out.Close()
}
