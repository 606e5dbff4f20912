package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/brequin/brequin/plan/curriculum"
)

// Cell order of a plan table row
const (
	yearCell = iota
	nameCell
	typeCell
	correlativesCell
	cellCount
)

// ParsePlanPage reads the subjects of a published study plan. The page holds
// a table.plan whose body rows carry, in order, the year ("1° Año"), the
// subject name, its type ("Anual", "Cuatrimestral 1°") and its correlatives,
// either as list items or separated by commas. A dash or an empty cell means
// no correlatives. Rows that cannot be read are logged and skipped.
func ParsePlanPage(r io.Reader, logger *slog.Logger) ([]curriculum.Subject, error) {
	if logger == nil {
		logger = slog.Default()
	}

	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	subjects := []curriculum.Subject{}

	rows := document.Find("table.plan").Find("tbody").Find("tr")
	for position, root := range rows.Nodes {
		subject, err := parsePlanRow(root)
		if err != nil {
			logger.Warn("Skipping study plan row", "row", position, "error", err)
			continue
		}
		subjects = append(subjects, subject)
	}

	return subjects, nil
}

func parsePlanRow(root *html.Node) (curriculum.Subject, error) {
	row := goquery.NewDocumentFromNode(root)

	cells := row.Find("td").Nodes
	if len(cells) < cellCount {
		return curriculum.Subject{}, fmt.Errorf("expected %d cells, found %d", cellCount, len(cells))
	}

	year, err := parseYear(cellText(cells[yearCell]))
	if err != nil {
		return curriculum.Subject{}, err
	}

	name := cellText(cells[nameCell])
	if name == "" {
		return curriculum.Subject{}, fmt.Errorf("unable to determine subject name")
	}

	subjectType, err := curriculum.ParseSubjectType(cellText(cells[typeCell]))
	if err != nil {
		return curriculum.Subject{}, err
	}

	return curriculum.Subject{
		Name:          name,
		Year:          year,
		Type:          subjectType,
		Prerequisites: parseCorrelatives(goquery.NewDocumentFromNode(cells[correlativesCell]).Selection),
	}, nil
}

func cellText(node *html.Node) string {
	return normalizeSpace(goquery.NewDocumentFromNode(node).Text())
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func parseYear(text string) (int, error) {
	digits := strings.TrimLeftFunc(text, func(r rune) bool { return !unicode.IsDigit(r) })
	end := strings.IndexFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) })
	if end >= 0 {
		digits = digits[:end]
	}

	year, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("unable to determine year from %q", text)
	}
	return year, nil
}

func parseCorrelatives(cell *goquery.Selection) []string {
	var correlatives []string

	items := cell.Find("li")
	if items.Length() > 0 {
		items.Each(func(i int, item *goquery.Selection) {
			if name := normalizeSpace(item.Text()); name != "" {
				correlatives = append(correlatives, name)
			}
		})
		return correlatives
	}

	text := normalizeSpace(cell.Text())
	for _, part := range strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ';' }) {
		name := strings.TrimSpace(part)
		if name == "" || name == "-" || name == "—" {
			continue
		}
		correlatives = append(correlatives, name)
	}
	return correlatives
}

// ScrapePlanPage downloads and parses the study plan published at url.
func ScrapePlanPage(ctx context.Context, url string, logger *slog.Logger) ([]curriculum.Subject, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch study plan %v: %v", url, response.Status)
	}

	return ParsePlanPage(response.Body, logger)
}
