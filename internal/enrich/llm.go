package enrich

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/llm"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/prompts"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// DefaultMaxChars caps the section text sent to the model
const DefaultMaxChars = 100000

const (
	minClassifyLen = 3
	maxClassifyLen = 80
	// the window around a title line is [idx-windowBefore, idx+windowAfter]
	windowBefore = 3
	windowAfter  = 2
	// titleProbeLen is how much of a title is used to locate it in the text
	titleProbeLen = 20
	// maxOrgDistance is the furthest, in characters, an organization mention may be from the title
	maxOrgDistance = 300
)

// LLMEnricher answers organization questions with a language model. The
// model client is created on first use and shared by every goroutine; any
// failure degrades to "no information".
type LLMEnricher struct {
	maxChars int
	factory  func(ctx context.Context) (llm.Client, error)

	once    sync.Once
	client  llm.Client
	initErr error

	verdicts sync.Map // trimmed line -> Verdict
}

// NewLLMEnricher creates an enricher backed by Gemini. The client is not
// created until the first question is asked.
func NewLLMEnricher(apiKey string, config *llm.Config, maxChars int) *LLMEnricher {
	return newLLMEnricher(func(ctx context.Context) (llm.Client, error) {
		return llm.NewClient(ctx, config, apiKey)
	}, maxChars)
}

// NewLLMEnricherWithClient creates an enricher over an existing client
func NewLLMEnricherWithClient(client llm.Client, maxChars int) *LLMEnricher {
	return newLLMEnricher(func(context.Context) (llm.Client, error) {
		return client, nil
	}, maxChars)
}

func newLLMEnricher(factory func(ctx context.Context) (llm.Client, error), maxChars int) *LLMEnricher {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &LLMEnricher{maxChars: maxChars, factory: factory}
}

func (e *LLMEnricher) model(ctx context.Context) (llm.Client, error) {
	e.once.Do(func() {
		e.client, e.initErr = e.factory(ctx)
		if e.initErr != nil {
			log.Printf("[ENRICH] Model unavailable, enrichment disabled: %v", e.initErr)
		}
	})
	return e.client, e.initErr
}

// Close releases the model client if one was created
func (e *LLMEnricher) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// ClassifyOrganization asks the model whether line names an organization.
// Lines shorter than 3 or longer than 80 characters are answered No without
// a model call.
func (e *LLMEnricher) ClassifyOrganization(ctx context.Context, line string) Verdict {
	line = strings.TrimSpace(line)
	if n := utf8.RuneCountInString(line); n < minClassifyLen || n > maxClassifyLen {
		return No
	}
	if v, ok := e.verdicts.Load(line); ok {
		return v.(Verdict)
	}

	client, err := e.model(ctx)
	if err != nil {
		return Unknown
	}

	schema := llm.OrganizationVerdictSchema(prompts.MustGet(prompts.EnrichmentFile, "classify-organization"))
	resp, err := client.GenerateJSON(ctx, llm.BuildExtractionPrompt(schema, line), llm.TierLite)
	if err != nil {
		log.Printf("[ENRICH] %v", &EnrichError{Message: "failed to classify line", Cause: err})
		return Unknown
	}

	var out struct {
		IsOrganization *bool `json:"is_organization"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(resp)), &out); err != nil {
		log.Printf("[ENRICH] %v", &EnrichError{Message: "failed to parse classification", Cause: err})
		return Unknown
	}

	verdict := Unknown
	if out.IsOrganization != nil {
		verdict = No
		if *out.IsOrganization {
			verdict = Yes
		}
	}
	e.verdicts.Store(line, verdict)
	return verdict
}

// EnrichMissingCompanies fills the company of records that have a title but
// no company. It first asks about each line near the title, then falls back
// to any organization the model finds within 300 characters of the title.
// Nothing is done unless the section mentions at least one organization.
func (e *LLMEnricher) EnrichMissingCompanies(ctx context.Context, records []types.EmploymentRecord, sectionText string) []types.EmploymentRecord {
	if !anyMissingCompany(records) {
		return records
	}

	text := capText(sectionText, e.maxChars)
	orgs, err := e.extractOrganizations(ctx, text)
	if err != nil {
		log.Printf("[ENRICH] %v", err)
		return records
	}
	if len(orgs) == 0 {
		return records
	}

	lines := strings.Split(text, "\n")
	for i := range records {
		rec := &records[i]
		if rec.Company != "" || rec.Title == "" {
			continue
		}
		probe := runePrefix(rec.Title, titleProbeLen)

		idx := -1
		for j, l := range lines {
			if strings.Contains(l, probe) {
				idx = j
				break
			}
		}
		if idx < 0 {
			continue
		}

		for _, l := range lines[max(0, idx-windowBefore):min(len(lines), idx+windowAfter+1)] {
			candidate := strings.TrimSpace(l)
			if candidate == "" || candidate == rec.Title {
				continue
			}
			if e.ClassifyOrganization(ctx, candidate) == Yes {
				rec.Company = candidate
				break
			}
		}
		if rec.Company != "" {
			continue
		}

		titleAt := runeIndex(text, probe)
		for _, org := range orgs {
			if at := runeIndex(text, org); at >= 0 && abs(at-titleAt) < maxOrgDistance {
				rec.Company = org
				break
			}
		}
	}
	return records
}

// extractOrganizations lists the organizations the model finds in text,
// keeping only names that really occur in it.
func (e *LLMEnricher) extractOrganizations(ctx context.Context, text string) ([]string, error) {
	client, err := e.model(ctx)
	if err != nil {
		return nil, nil
	}

	schema := llm.OrganizationListSchema(prompts.MustGet(prompts.EnrichmentFile, "extract-organizations"))
	resp, err := client.GenerateJSON(ctx, llm.BuildExtractionPrompt(schema, text), llm.TierStandard)
	if err != nil {
		return nil, &EnrichError{Message: "failed to extract organizations", Cause: err}
	}

	var out struct {
		Organizations []string `json:"organizations"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(resp)), &out); err != nil {
		return nil, &EnrichError{Message: "failed to parse organizations", Cause: err}
	}

	seen := make(map[string]struct{}, len(out.Organizations))
	orgs := make([]string, 0, len(out.Organizations))
	for _, org := range out.Organizations {
		org = strings.TrimSpace(org)
		if org == "" || !strings.Contains(text, org) {
			continue
		}
		if _, dup := seen[org]; dup {
			continue
		}
		seen[org] = struct{}{}
		orgs = append(orgs, org)
	}
	return orgs, nil
}

func anyMissingCompany(records []types.EmploymentRecord) bool {
	for _, r := range records {
		if r.Company == "" && r.Title != "" {
			return true
		}
	}
	return false
}

// capText truncates s to at most n characters
func capText(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func runePrefix(s string, n int) string {
	return capText(s, n)
}

// runeIndex is strings.Index measured in characters
func runeIndex(s, sub string) int {
	at := strings.Index(s, sub)
	if at < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:at])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
