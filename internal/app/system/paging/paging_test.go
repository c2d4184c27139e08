package paging_test

import (
	"net/http/httptest"
	"testing"

	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/paging"
)

func TestClamp_Defaults(t *testing.T) {
	w := paging.Clamp(0, 0)
	if w.Skip != 0 {
		t.Errorf("skip: got %d, want 0", w.Skip)
	}
	if w.Limit != paging.DefaultPageSize {
		t.Errorf("limit: got %d, want %d", w.Limit, paging.DefaultPageSize)
	}
}

func TestClamp_NegativeSkip(t *testing.T) {
	w := paging.Clamp(-5, 10)
	if w.Skip != 0 {
		t.Errorf("skip: got %d, want 0", w.Skip)
	}
}

func TestClamp_LimitCeiling(t *testing.T) {
	w := paging.Clamp(0, 500)
	if w.Limit != paging.MaxPageSize {
		t.Errorf("limit: got %d, want %d", w.Limit, paging.MaxPageSize)
	}
}

func TestClamp_LimitFloor(t *testing.T) {
	w := paging.Clamp(0, -1)
	if w.Limit != paging.DefaultPageSize {
		t.Errorf("limit: got %d, want %d", w.Limit, paging.DefaultPageSize)
	}
}

func TestParseWindow(t *testing.T) {
	r := httptest.NewRequest("GET", "/requests/history?skip=7&limit=7", nil)
	w := paging.ParseWindow(r)
	if w.Skip != 7 || w.Limit != 7 {
		t.Errorf("got skip=%d limit=%d, want 7/7", w.Skip, w.Limit)
	}
}

func TestParseWindow_Missing(t *testing.T) {
	r := httptest.NewRequest("GET", "/requests/history", nil)
	w := paging.ParseWindow(r)
	if w.Skip != 0 || w.Limit != paging.DefaultPageSize {
		t.Errorf("got skip=%d limit=%d, want 0/%d", w.Skip, w.Limit, paging.DefaultPageSize)
	}
}

func TestParseWindow_Garbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/requests/history?skip=abc&limit=xyz", nil)
	w := paging.ParseWindow(r)
	if w.Skip != 0 || w.Limit != paging.DefaultPageSize {
		t.Errorf("got skip=%d limit=%d, want 0/%d", w.Skip, w.Limit, paging.DefaultPageSize)
	}
}
