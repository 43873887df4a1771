package dotenv

import (
	"testing"
)

func TestResult_Provenance(t *testing.T) {
	res := &Result{
		Path: "/srv/app/.env",
		Assignments: []Assignment{
			{Name: "ZETA", Value: "1", Line: 1, Written: []View{ViewPrimary}},
			{Name: "ALPHA", Value: "2", Line: 2},
			{Name: "ZETA", Value: "3", Line: 5, Written: []View{ViewProcess}},
		},
	}

	prov := res.Provenance()
	if len(prov) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(prov))
	}

	if prov[0].Name != "ALPHA" || prov[0].Line != 2 {
		t.Errorf("first entry = %+v, want ALPHA from line 2", prov[0])
	}
	if prov[1].Name != "ZETA" || prov[1].Line != 5 {
		t.Errorf("second entry = %+v, want ZETA from line 5", prov[1])
	}
	if len(prov[1].Written) != 1 || prov[1].Written[0] != ViewProcess {
		t.Errorf("ZETA written = %v, want [process]", prov[1].Written)
	}
	for _, p := range prov {
		if p.Path != "/srv/app/.env" {
			t.Errorf("entry %s path = %q, want /srv/app/.env", p.Name, p.Path)
		}
	}
}

func TestResult_Provenance_Nil(t *testing.T) {
	var res *Result
	if prov := res.Provenance(); prov != nil {
		t.Errorf("expected nil provenance for nil result, got %v", prov)
	}
}

func TestResult_Vars(t *testing.T) {
	res := &Result{
		Assignments: []Assignment{
			{Name: "A", Value: "first"},
			{Name: "B", Value: "b"},
			{Name: "A", Value: "last"},
		},
	}

	vars := res.Vars()
	if len(vars) != 2 {
		t.Fatalf("expected 2 vars, got %d", len(vars))
	}
	if vars["A"] != "last" {
		t.Errorf("A = %q, want last occurrence %q", vars["A"], "last")
	}

	var nilRes *Result
	if nilRes.Vars() != nil {
		t.Error("expected nil vars for nil result")
	}

	empty := (&Result{}).Vars()
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil vars, got %v", empty)
	}
}
