package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
	pkgauth "github.com/campushire/placementhub/internal/pkg/auth"
)

func newTestAuthService() (*AuthService, *mockStudentRepo, *mockAdminRepo) {
	students := newMockStudentRepo()
	admins := newMockAdminRepo()
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "placementhub-test",
	})
	return NewAuthService(students, admins, jwtService), students, admins
}

func TestRegisterStudentHashesPassword(t *testing.T) {
	svc, students, _ := newTestAuthService()

	student, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		RegNo:    "20CS101",
		Name:     "Asha",
		Email:    "asha@college.edu",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	stored := students.students[student.ID]
	if stored.Password == "supersecret" {
		t.Error("password stored in plain text")
	}
	if !pkgauth.CheckPassword(stored.Password, "supersecret") {
		t.Error("stored hash does not verify")
	}
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	req := &dto.RegisterStudentRequest{
		RegNo: "20CS101", Name: "Asha", Email: "asha@college.edu", Password: "supersecret",
	}
	if _, err := svc.RegisterStudent(context.Background(), req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	req2 := &dto.RegisterStudentRequest{
		RegNo: "20CS102", Name: "Other", Email: "asha@college.edu", Password: "supersecret",
	}
	_, err := svc.RegisterStudent(context.Background(), req2)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("expected duplicate email error, got %v", err)
	}
}

func TestLoginStudent(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		RegNo: "20CS101", Name: "Asha", Email: "asha@college.edu", Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := svc.LoginStudent(context.Background(), &dto.LoginRequest{
		Email: "asha@college.edu", Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !strings.HasPrefix(resp.Token, "Bearer ") {
		t.Errorf("token missing Bearer prefix: %q", resp.Token)
	}
	if resp.Student == nil || resp.Student.RegNo != "20CS101" {
		t.Errorf("unexpected actor summary: %+v", resp.Student)
	}
	if resp.Admin != nil {
		t.Error("student login must not carry an admin summary")
	}
}

func TestLoginStudentWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		RegNo: "20CS101", Name: "Asha", Email: "asha@college.edu", Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := svc.LoginStudent(context.Background(), &dto.LoginRequest{
		Email: "asha@college.edu", Password: "wrong-password",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials, got %v", err)
	}
	if resp != nil {
		t.Error("no token may be issued on a failed login")
	}
}

func TestLoginStudentUnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.LoginStudent(context.Background(), &dto.LoginRequest{
		Email: "nobody@college.edu", Password: "whatever1",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestLoginAdmin(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		Name: "Placement Cell", Email: "cell@college.edu", Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := svc.LoginAdmin(context.Background(), &dto.LoginRequest{
		Email: "cell@college.edu", Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Admin == nil || resp.Admin.Email != "cell@college.edu" {
		t.Errorf("unexpected actor summary: %+v", resp.Admin)
	}
	if resp.Student != nil {
		t.Error("admin login must not carry a student summary")
	}
}
