package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sandun/career-guide/internal/db"
)

// In-memory store fakes used across the handler and service tests.

type fakeUserStore struct {
	users map[uuid.UUID]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, input *db.UserInput) (uuid.UUID, error) {
	id := uuid.New()
	f.users[id] = &db.User{
		ID:                 id,
		Role:               input.Role,
		Email:              input.Email,
		PasswordHash:       input.PasswordHash,
		ContactNumber:      input.ContactNumber,
		FullName:           input.FullName,
		NameWithInitials:   input.NameWithInitials,
		Birthday:           input.Birthday,
		Gender:             input.Gender,
		CompanyName:        input.CompanyName,
		Industry:           input.Industry,
		RegistrationNumber: input.RegistrationNumber,
		BranchLocation:     input.BranchLocation,
		CreatedAt:          time.Now(),
	}
	return id, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) UpdateUserProfile(_ context.Context, userID uuid.UUID, input *db.ProfileUpdateInput) (*db.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	if input.ContactNumber != nil {
		u.ContactNumber = *input.ContactNumber
	}
	if input.FullName != nil {
		u.FullName = *input.FullName
	}
	if input.NameWithInitials != nil {
		u.NameWithInitials = *input.NameWithInitials
	}
	if input.Birthday != nil {
		u.Birthday = input.Birthday
	}
	if input.Gender != nil {
		u.Gender = *input.Gender
	}
	if input.CompanyName != nil {
		u.CompanyName = *input.CompanyName
	}
	if input.Industry != nil {
		u.Industry = *input.Industry
	}
	if input.RegistrationNumber != nil {
		u.RegistrationNumber = *input.RegistrationNumber
	}
	if input.BranchLocation != nil {
		u.BranchLocation = *input.BranchLocation
	}
	return u, nil
}

type fakeScheduleStore struct {
	schedules map[uuid.UUID]*db.ScheduledInterview
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{schedules: make(map[uuid.UUID]*db.ScheduledInterview)}
}

func (f *fakeScheduleStore) CreateScheduledInterview(_ context.Context, input *db.ScheduleInput) (*db.ScheduledInterview, error) {
	now := time.Now()
	si := &db.ScheduledInterview{
		ID:             uuid.New(),
		Title:          input.Title,
		CandidateName:  input.CandidateName,
		CandidateEmail: input.CandidateEmail,
		Date:           input.Date,
		Time:           input.Time,
		Duration:       input.Duration,
		MeetingLink:    input.MeetingLink,
		Notes:          input.Notes,
		Status:         "scheduled",
		UserID:         input.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.schedules[si.ID] = si
	return si, nil
}

func (f *fakeScheduleStore) GetScheduledInterview(_ context.Context, id uuid.UUID) (*db.ScheduledInterview, error) {
	return f.schedules[id], nil
}

func (f *fakeScheduleStore) ListScheduledInterviews(_ context.Context) ([]db.ScheduledInterview, error) {
	var out []db.ScheduledInterview
	for _, si := range f.schedules {
		out = append(out, *si)
	}
	return out, nil
}

func (f *fakeScheduleStore) ListUpcomingInterviews(_ context.Context, today time.Time) ([]db.ScheduledInterview, error) {
	var out []db.ScheduledInterview
	for _, si := range f.schedules {
		if !si.Date.Before(today) && si.Status == "scheduled" {
			out = append(out, *si)
		}
	}
	return out, nil
}

func (f *fakeScheduleStore) ListPastInterviews(_ context.Context, today time.Time) ([]db.ScheduledInterview, error) {
	var out []db.ScheduledInterview
	for _, si := range f.schedules {
		if si.Date.Before(today) {
			out = append(out, *si)
		}
	}
	return out, nil
}

func (f *fakeScheduleStore) UpdateScheduledInterview(_ context.Context, id uuid.UUID, input *db.ScheduleUpdateInput) (*db.ScheduledInterview, error) {
	si, ok := f.schedules[id]
	if !ok {
		return nil, nil
	}
	if input.Title != nil {
		si.Title = *input.Title
	}
	if input.CandidateName != nil {
		si.CandidateName = *input.CandidateName
	}
	if input.CandidateEmail != nil {
		si.CandidateEmail = *input.CandidateEmail
	}
	if input.Date != nil {
		si.Date = *input.Date
	}
	if input.Time != nil {
		si.Time = *input.Time
	}
	if input.Duration != nil {
		si.Duration = *input.Duration
	}
	if input.MeetingLink != nil {
		si.MeetingLink = *input.MeetingLink
	}
	if input.Notes != nil {
		si.Notes = *input.Notes
	}
	if input.Status != nil {
		si.Status = *input.Status
	}
	si.UpdatedAt = time.Now()
	return si, nil
}

func (f *fakeScheduleStore) DeleteScheduledInterview(_ context.Context, id uuid.UUID) (*db.ScheduledInterview, error) {
	si, ok := f.schedules[id]
	if !ok {
		return nil, nil
	}
	delete(f.schedules, id)
	return si, nil
}

func (f *fakeScheduleStore) UpdateScheduleStatus(_ context.Context, id uuid.UUID, status string) (*db.ScheduledInterview, error) {
	si, ok := f.schedules[id]
	if !ok {
		return nil, nil
	}
	si.Status = status
	si.UpdatedAt = time.Now()
	return si, nil
}

func (f *fakeScheduleStore) UpdateMeetingLink(_ context.Context, id uuid.UUID, meetingLink string) (*db.ScheduledInterview, error) {
	si, ok := f.schedules[id]
	if !ok {
		return nil, nil
	}
	si.MeetingLink = meetingLink
	si.UpdatedAt = time.Now()
	return si, nil
}

type fakeInterviewStore struct {
	interviews map[uuid.UUID]*db.Interview
}

func newFakeInterviewStore() *fakeInterviewStore {
	return &fakeInterviewStore{interviews: make(map[uuid.UUID]*db.Interview)}
}

func (f *fakeInterviewStore) CreateInterview(_ context.Context, input *db.InterviewInput) (uuid.UUID, error) {
	id := uuid.New()
	f.interviews[id] = &db.Interview{
		ID:             id,
		JobPosition:    input.JobPosition,
		JobDescription: input.JobDescription,
		QuestionCount:  input.QuestionCount,
		InterviewType:  input.InterviewType,
		Questions:      input.Questions,
		CreatedAt:      time.Now(),
	}
	return id, nil
}

func (f *fakeInterviewStore) GetInterview(_ context.Context, id uuid.UUID) (*db.Interview, error) {
	return f.interviews[id], nil
}

func (f *fakeInterviewStore) ListInterviews(_ context.Context, _ int) ([]db.Interview, error) {
	var out []db.Interview
	for _, iv := range f.interviews {
		out = append(out, *iv)
	}
	return out, nil
}

func (f *fakeInterviewStore) DeleteInterview(_ context.Context, id uuid.UUID) error {
	delete(f.interviews, id)
	return nil
}

type fakeAssessmentStore struct {
	applicants []db.Applicant
}

func (f *fakeAssessmentStore) CreateApplicant(_ context.Context, input *db.ApplicantInput) (*db.Applicant, error) {
	a := db.Applicant{
		ID:                 uuid.New(),
		StudentName:        input.StudentName,
		SkillsSelected:     input.SkillsSelected,
		QuizScore:          input.QuizScore,
		QuizTotalQuestions: input.QuizTotalQuestions,
		ConfidenceScore:    input.ConfidenceScore,
		FinalRank:          input.FinalRank,
		AverageScore:       input.AverageScore,
		SubmittedAt:        time.Now(),
	}
	f.applicants = append(f.applicants, a)
	return &a, nil
}

func (f *fakeAssessmentStore) ListApplicants(_ context.Context, _ int) ([]db.Applicant, error) {
	return f.applicants, nil
}

// fakeLLM returns a canned completion.
type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) GenerateContent(_ context.Context, _ string) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Close() error { return nil }
