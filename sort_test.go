package lehar

import "testing"

func issueNamed(title, pdf string) Issue {
	return Issue{Title: title, PDF: pdf, Cover: "covers/" + title + ".jpg"}
}

func TestSortIssuesNewestFirst(t *testing.T) {
	issues := []Issue{
		issueNamed("spring", "issues/2024-01-05-spring.pdf"),
		issueNamed("winter", "issues/2024-12-20-winter.pdf"),
		issueNamed("summer", "issues/2024-06-10-summer.pdf"),
	}

	sorted := SortIssues(issues)

	want := []string{"winter", "summer", "spring"}
	for i, title := range want {
		if sorted[i].Title != title {
			t.Errorf("sorted[%d].Title = %q, want %q", i, sorted[i].Title, title)
		}
	}
}

func TestSortIssuesDatelessLast(t *testing.T) {
	issues := []Issue{
		issueNamed("no-date-a", "issues/special-edition.pdf"),
		issueNamed("old", "issues/1999-03-01-old.pdf"),
		issueNamed("no-date-b", "issues/anniversary.pdf"),
	}

	sorted := SortIssues(issues)

	if sorted[0].Title != "old" {
		t.Errorf("sorted[0].Title = %q, want %q", sorted[0].Title, "old")
	}
	// Dateless issues keep their relative input order.
	if sorted[1].Title != "no-date-a" || sorted[2].Title != "no-date-b" {
		t.Errorf("dateless order = [%q, %q], want [%q, %q]",
			sorted[1].Title, sorted[2].Title, "no-date-a", "no-date-b")
	}
}

func TestSortIssuesStableOnEqualDates(t *testing.T) {
	issues := []Issue{
		issueNamed("first", "issues/2024-05-01-first.pdf"),
		issueNamed("second", "issues/2024-05-01-second.pdf"),
		issueNamed("third", "issues/2024-05-01-third.pdf"),
	}

	sorted := SortIssues(issues)

	for i, title := range []string{"first", "second", "third"} {
		if sorted[i].Title != title {
			t.Errorf("sorted[%d].Title = %q, want %q", i, sorted[i].Title, title)
		}
	}
}

func TestSortIssuesDateAnywhereInReference(t *testing.T) {
	issues := []Issue{
		issueNamed("plain", "issues/magazine.pdf"),
		issueNamed("dated-dir", "archive/2023-11-11/magazine.pdf"),
	}

	sorted := SortIssues(issues)

	if sorted[0].Title != "dated-dir" {
		t.Errorf("sorted[0].Title = %q, want %q", sorted[0].Title, "dated-dir")
	}
}

func TestSortIssuesDoesNotModifyInput(t *testing.T) {
	issues := []Issue{
		issueNamed("spring", "issues/2024-01-05-spring.pdf"),
		issueNamed("winter", "issues/2024-12-20-winter.pdf"),
	}

	SortIssues(issues)

	if issues[0].Title != "spring" {
		t.Errorf("input slice was reordered, issues[0].Title = %q", issues[0].Title)
	}
}

func TestDateKeyOfNoMatch(t *testing.T) {
	got := dateKeyOf("issues/special.pdf")
	want := dateKey{0, 1, 1}
	if got != want {
		t.Errorf("dateKeyOf = %+v, want %+v", got, want)
	}
}
