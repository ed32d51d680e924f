package scenes

import (
	"math"
	"testing"

	"github.com/decker502/funclaw/pkg/config"
)

func TestModalSceneOverlay(t *testing.T) {
	tests := []struct {
		presentation ModalPresentation
		want         bool
	}{
		{PresentationModal, false},
		{PresentationTransparent, true},
		{PresentationFormSheet, true},
	}
	for _, tt := range tests {
		t.Run(tt.presentation.String(), func(t *testing.T) {
			s := NewModalScene(newTestServices(t), tt.presentation, "/x")
			if got := s.IsOverlay(); got != tt.want {
				t.Errorf("IsOverlay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModalSceneSlidesIn(t *testing.T) {
	s := NewModalScene(newTestServices(t), PresentationFormSheet, "/formsheet")

	if s.Offset() != float64(config.GameWindowHeight) {
		t.Errorf("initial offset = %.1f, want %d", s.Offset(), config.GameWindowHeight)
	}
	advanceScene(s.tick, 0.35)
	if s.Offset() != 0 {
		t.Errorf("offset after slide = %.1f, want 0", s.Offset())
	}

	_, y, _, h := s.panelRect()
	if got, want := s.closeButton.Y+s.closeButton.Height, y+h-config.CardPadding; math.Abs(got-want) > 1e-6 {
		t.Errorf("close button bottom = %.1f, want %.1f", got, want)
	}
}

func TestModalSceneDismissReturnsHome(t *testing.T) {
	svc := newTestServices(t)
	if err := svc.SceneManager.Navigate("/modal"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	s := svc.SceneManager.GetCurrentScene().(*ModalScene)
	if s.demo.Title != "Modal" {
		t.Errorf("title = %q, want Modal", s.demo.Title)
	}
	advanceScene(s.tick, 0.35)

	s.closeButton.OnClick()
	s.Dismiss()
	if !s.Closing() || s.closeButton.Enabled {
		t.Error("dismiss should disable the close button")
	}
	if svc.SceneManager.Depth() != 2 {
		t.Error("modal should stay until the slide-out finishes")
	}

	advanceScene(s.tick, 0.35)

	if svc.SceneManager.Depth() != 1 || svc.SceneManager.CurrentRoute() != "/" {
		t.Errorf("after dismiss: depth=%d route=%q", svc.SceneManager.Depth(), svc.SceneManager.CurrentRoute())
	}
}

func TestModalSceneUnknownRouteTitle(t *testing.T) {
	s := NewModalScene(newTestServices(t), PresentationTransparent, "/nowhere")
	if s.demo.Title != "transparent-modal" {
		t.Errorf("fallback title = %q", s.demo.Title)
	}
}
