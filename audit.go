package campbuidl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/eringen/campbuidl/markdown"
)

// Finding is one problem the audit found in rendered HTML.
type Finding struct {
	Rule    string
	Element string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s (%s)", f.Rule, f.Message, f.Element)
}

// Audit rules.
const (
	RuleRelMissing      = "rel-missing"
	RuleTargetMissing   = "target-missing"
	RuleConnectorOrphan = "connector-orphan"
	RuleDuplicateID     = "duplicate-id"
	RuleEmptyLinks      = "empty-links"
)

// AuditHTML checks a rendered page for markup the renderer must never
// produce: new-tab links without the full rel, rel without a new tab,
// connectors outside a lesson, duplicate ids and empty link sections.
func AuditHTML(html []byte) ([]Finding, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("campbuidl: parse html: %w", err)
	}
	var findings []Finding

	doc.Find("a[target]").Each(func(_ int, s *goquery.Selection) {
		rel, _ := s.Attr("rel")
		if !hasRel(rel, markdown.ExternalRel) {
			findings = append(findings, Finding{RuleRelMissing, describe(s), fmt.Sprintf("rel %q lacks %q", rel, markdown.ExternalRel)})
		}
	})
	doc.Find("a[rel]").Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr("target"); !ok {
			findings = append(findings, Finding{RuleTargetMissing, describe(s), "rel without target"})
		}
	})
	doc.Find("[data-connector]").Each(func(_ int, s *goquery.Selection) {
		if s.Parent().Not("section[data-lesson]").Length() > 0 {
			findings = append(findings, Finding{RuleConnectorOrphan, describe(s), "connector outside a lesson block"})
		}
	})
	seen := make(map[string]bool)
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if seen[id] {
			findings = append(findings, Finding{RuleDuplicateID, describe(s), "duplicate id " + id})
		}
		seen[id] = true
	})
	doc.Find("[data-section=links]").Each(func(_ int, s *goquery.Selection) {
		if s.Find("a").Length() == 0 {
			findings = append(findings, Finding{RuleEmptyLinks, describe(s), "links section without links"})
		}
	})
	return findings, nil
}

func hasRel(rel, want string) bool {
	have := strings.Fields(rel)
	for _, w := range strings.Fields(want) {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func describe(s *goquery.Selection) string {
	name := goquery.NodeName(s)
	if href, ok := s.Attr("href"); ok {
		return name + "[href=" + href + "]"
	}
	if id, ok := s.Attr("id"); ok {
		return name + "#" + id
	}
	return name
}
