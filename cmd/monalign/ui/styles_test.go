package ui

import "testing"

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("MONALIGN_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when MONALIGN_DARK_MODE=1")
	}

	t.Setenv("MONALIGN_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when MONALIGN_DARK_MODE is unset")
	}
}

func TestDetectThemeColorFgBg(t *testing.T) {
	t.Setenv("MONALIGN_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for background 0")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Fatalf("expected light theme for background 15")
	}
}

func TestThemeByName(t *testing.T) {
	if !ThemeByName("dark").IsDark {
		t.Fatalf("expected dark theme for name dark")
	}
	if ThemeByName("light").IsDark {
		t.Fatalf("expected light theme for name light")
	}
	if ThemeByName(" DARK ").IsDark != true {
		t.Fatalf("expected name matching to trim and lowercase")
	}
}
