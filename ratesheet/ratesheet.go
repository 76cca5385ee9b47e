// Package ratesheet reads the daily 30-year rate sheet emailed by the pricing
// engine and turns it into a market-rate table.
package ratesheet

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"rate-tracker/domain"
)

var ErrNoRates = errors.New("no rates found in rate sheet")

// A rate sheet lists each product label followed, possibly on the next line
// or in the next table cell, by its rate.
var patterns = []struct {
	program domain.Program
	re      *regexp.Regexp
}{
	{domain.ProgramConventional, regexp.MustCompile(`(?i)30-YR\.?\s*CONFORMING\s*(\d+\.\d+)`)},
	{domain.ProgramJumbo, regexp.MustCompile(`(?i)30-YR\.?\s*JUMBO\s*(\d+\.\d+)`)},
	{domain.ProgramFHA, regexp.MustCompile(`(?i)30-YR\.?\s*FHA\s*(\d+\.\d+)`)},
	{domain.ProgramVA, regexp.MustCompile(`(?i)30-YR\.?\s*VA\s*(\d+\.\d+)`)},
}

// ParseText extracts every program rate present in text. Programs missing
// from the sheet are left out of the result.
func ParseText(text string) (domain.MarketRateTable, error) {
	rates := domain.MarketRateTable{}
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		rate, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s rate %q: %w", p.program, m[1], err)
		}
		rates[p.program] = rate
	}
	if len(rates) == 0 {
		return nil, ErrNoRates
	}
	return rates, nil
}

// ParseHTML flattens an HTML rate sheet to one line per text node and parses
// the result like ParseText.
func ParseHTML(r io.Reader) (domain.MarketRateTable, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse rate sheet html: %w", err)
	}

	nodes, err := htmlquery.QueryAll(doc, "//body//text()")
	if err != nil {
		return nil, fmt.Errorf("xpath rate sheet text: %w", err)
	}

	return ParseText(strings.Join(textLines(nodes), "\n"))
}

func textLines(nodes []*html.Node) []string {
	lines := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != html.TextNode {
			continue
		}
		if s := strings.TrimSpace(n.Data); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// Parse accepts either form, sniffing for markup.
func Parse(body string) (domain.MarketRateTable, error) {
	if strings.Contains(body, "<") && strings.Contains(body, ">") {
		return ParseHTML(strings.NewReader(body))
	}
	return ParseText(body)
}
