package api

import (
	"encoding/json"
	"testing"
)

func TestDecodePageEnvelope(t *testing.T) {
	raw := json.RawMessage(`{
		"content": [{"partId": "p1", "partName": "Battery Pack"}],
		"pageNumber": 1, "pageSize": 10,
		"totalElements": 11, "totalPages": 2,
		"first": false, "last": true
	}`)

	page, err := DecodePage[Part](raw)
	if err != nil {
		t.Fatalf("DecodePage: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].PartName != "Battery Pack" {
		t.Errorf("items = %+v", page.Items)
	}
	if page.PageNumber != 1 || page.PageSize != 10 || page.TotalPages != 2 {
		t.Errorf("meta = %+v", page)
	}
	if page.First || !page.Last {
		t.Errorf("first/last = %v/%v", page.First, page.Last)
	}
}

func TestDecodePageLegacyKeys(t *testing.T) {
	// Older endpoints send page/size instead of pageNumber/pageSize.
	raw := json.RawMessage(`{
		"content": [], "page": 3, "size": 20,
		"totalElements": 80, "totalPages": 4
	}`)

	page, err := DecodePage[Part](raw)
	if err != nil {
		t.Fatalf("DecodePage: %v", err)
	}
	if page.PageNumber != 3 || page.PageSize != 20 {
		t.Errorf("legacy keys not honored: %+v", page)
	}
}

func TestDecodePageBareArray(t *testing.T) {
	raw := json.RawMessage(`[{"partId": "p1"}, {"partId": "p2"}, {"partId": "p3"}]`)

	page, err := DecodePage[Part](raw)
	if err != nil {
		t.Fatalf("DecodePage: %v", err)
	}
	if len(page.Items) != 3 {
		t.Fatalf("items = %+v", page.Items)
	}
	if page.TotalPages != 1 || page.PageNumber != 0 || page.TotalElements != 3 {
		t.Errorf("array not treated as one full page: %+v", page)
	}
	if !page.First || !page.Last {
		t.Errorf("first/last = %v/%v, want true/true", page.First, page.Last)
	}
}

func TestDecodePageSingularObject(t *testing.T) {
	raw := json.RawMessage(`{"partId": "p7", "partName": "Heat Pump Module"}`)

	page, err := DecodePage[Part](raw)
	if err != nil {
		t.Fatalf("DecodePage: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].PartID != "p7" {
		t.Errorf("items = %+v, want the one object", page.Items)
	}
	if page.TotalElements != 1 || page.TotalPages != 1 {
		t.Errorf("meta = %+v", page)
	}
}

func TestDecodePageEmptyBodies(t *testing.T) {
	for _, raw := range []string{"", "null", "  "} {
		page, err := DecodePage[Part](json.RawMessage(raw))
		if err != nil {
			t.Fatalf("DecodePage(%q): %v", raw, err)
		}
		if !page.Empty() {
			t.Errorf("DecodePage(%q) = %+v, want an empty page", raw, page)
		}
		if page.TotalPages != 1 {
			t.Errorf("DecodePage(%q) totalPages = %d", raw, page.TotalPages)
		}
	}
}

func TestDecodePageMalformed(t *testing.T) {
	if _, err := DecodePage[Part](json.RawMessage(`[{"partId": 42}]`)); err == nil {
		t.Error("mistyped array element decoded without error")
	}
	if _, err := DecodePage[Part](json.RawMessage(`{"content": "nope"}`)); err == nil {
		t.Error("non-array content decoded without error")
	}
}

func TestPageEmpty(t *testing.T) {
	if !(Page[Part]{}).Empty() {
		t.Error("zero page should be empty")
	}
	if (Page[Part]{Items: []Part{{}}, TotalElements: 1}).Empty() {
		t.Error("populated page reported empty")
	}
}
