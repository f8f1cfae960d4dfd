package terminal

import "testing"

func TestFitViewport(t *testing.T) {
	cases := []struct {
		width, height, reserved int
		wantCols, wantRows      int
	}{
		{80, 24, 4, 80, 40},
		{120, 50, 10, 120, 80},
		{40, 3, 10, 40, 2},
		{0, 0, 0, 1, 2},
	}
	for _, c := range cases {
		cols, rows := FitViewport(c.width, c.height, c.reserved)
		if cols != c.wantCols || rows != c.wantRows {
			t.Errorf("FitViewport(%d,%d,%d) = %d,%d, want %d,%d",
				c.width, c.height, c.reserved, cols, rows, c.wantCols, c.wantRows)
		}
	}
}

func TestGetSize_FallsBack(t *testing.T) {
	// Under `go test` stdout is usually not a terminal.
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d,%d, want positive", w, h)
	}
}
