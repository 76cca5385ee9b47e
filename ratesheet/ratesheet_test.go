package ratesheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rate-tracker/domain"
)

const sampleEmail = `Good morning,

Today's Optimal Blue national averages:

30-YR. CONFORMING
6.048
30-YR. JUMBO
6.361
30-yr fha 5.956
30-YR. VA
	5.690

15-YR. CONFORMING
5.310
`

func TestParseText(t *testing.T) {
	got, err := ParseText(sampleEmail)
	require.NoError(t, err)

	assert.Equal(t, domain.MarketRateTable{
		domain.ProgramConventional: 6.048,
		domain.ProgramJumbo:        6.361,
		domain.ProgramFHA:          5.956,
		domain.ProgramVA:           5.690,
	}, got)
}

func TestParseText_Partial(t *testing.T) {
	got, err := ParseText("30-YR. JUMBO\n6.125")
	require.NoError(t, err)

	assert.Equal(t, domain.MarketRateTable{domain.ProgramJumbo: 6.125}, got)
}

func TestParseText_NoRates(t *testing.T) {
	_, err := ParseText("nothing to see here")
	assert.ErrorIs(t, err, ErrNoRates)
}

func TestParseHTML(t *testing.T) {
	page := `<html><body>
<table>
  <tr><td><b>30-YR. CONFORMING</b></td><td>6.048</td></tr>
  <tr><td><b>30-YR. JUMBO</b></td><td>6.361</td></tr>
  <tr><td><b>30-YR. FHA</b></td><td>5.956</td></tr>
  <tr><td><b>30-YR. VA</b></td><td>5.690</td></tr>
</table>
</body></html>`

	got, err := ParseHTML(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, 6.048, got[domain.ProgramConventional])
	assert.Equal(t, 6.361, got[domain.ProgramJumbo])
	assert.Equal(t, 5.956, got[domain.ProgramFHA])
	assert.Equal(t, 5.690, got[domain.ProgramVA])
}

func TestParse_SniffsMarkup(t *testing.T) {
	got, err := Parse("<p>30-YR. VA</p><p>5.5</p>")
	require.NoError(t, err)
	assert.Equal(t, domain.MarketRateTable{domain.ProgramVA: 5.5}, got)

	got, err = Parse("30-YR. VA 5.75")
	require.NoError(t, err)
	assert.Equal(t, domain.MarketRateTable{domain.ProgramVA: 5.75}, got)
}
