package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(25, 2, 10)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("page 2 of 3 should have next and prev: %+v", p)
	}

	empty := BuildPaginationFromPage(0, 1, 10)
	if empty.TotalPages != 1 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty result pagination wrong: %+v", empty)
	}
}

func TestSafeOrderClauseFallback(t *testing.T) {
	allowed := map[string]string{
		"date":  "created_at",
		"score": "total_score",
	}

	p := Params{SortBy: "score", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "date")
	if err != nil {
		t.Fatal(err)
	}
	if clause != "ORDER BY total_score ASC" {
		t.Fatalf("unexpected clause: %s", clause)
	}

	// sort key desconhecido → default desc
	p = Params{SortBy: "evil; DROP TABLE", SortOrder: "asc"}
	clause, err = p.SafeOrderClause(allowed, "date")
	if err != nil {
		t.Fatal(err)
	}
	if clause != "ORDER BY created_at DESC" {
		t.Fatalf("unknown sort key must fall back to date desc, got %s", clause)
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 10}
	if p.Offset() != 20 || p.Limit() != 10 {
		t.Fatalf("offset/limit wrong: %d/%d", p.Offset(), p.Limit())
	}
}
