package console

import "testing"

func TestFloor(t *testing.T) {
	for _, tt := range []struct{ in, want int }{
		{0, MinWidth},
		{79, MinWidth},
		{80, 80},
		{200, 200},
	} {
		if got := Floor(tt.in); got != tt.want {
			t.Errorf("Floor(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
