package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSubmitterTeacherID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := submitterTeacherID(c); ok {
		t.Fatalf("expected no teacher id on a bare context")
	}

	c.Set("teacherID", 5)
	id, ok := submitterTeacherID(c)
	if !ok || id != 5 {
		t.Fatalf("expected teacher id 5, got %d ok=%v", id, ok)
	}
}

func TestSubmitMark_RejectsSpoofedTeacherID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"team_id": 1, "teacher_id": 3, "criteria_id": "rc1", "value": 2, "termwork": "termwork1"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/marks", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("teacherID", 2)

	// Rejected before any store access: the body claims teacher 3 but the
	// token is linked to teacher 2.
	SubmitMark(c)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "themselves") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
