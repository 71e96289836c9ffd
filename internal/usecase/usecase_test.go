package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-careerpath-backend/internal/catalog"
	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) GetByUserID(ctx context.Context, userID string) ([]domain.UserSkill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSkill), args.Error(1)
}
func (m *MockSkillRepo) ReplaceForUser(ctx context.Context, userID string, skills []domain.UserSkill) error {
	return m.Called(ctx, userID, skills).Error(0)
}

type fakeSource struct {
	name string
	jobs []domain.JobPosting
	err  error
}

func (s *fakeSource) Name() string { return s.name }
func (s *fakeSource) Scrape(ctx context.Context, keywords, location string) ([]domain.JobPosting, error) {
	return s.jobs, s.err
}

func skillsFixture(entries ...domain.UserSkill) []domain.UserSkill {
	return entries
}

func TestRegisterAndLogin(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, "test-secret", time.Hour)
	ctx := context.Background()

	t.Run("Register hashes the password", func(t *testing.T) {
		mockRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil).Once()
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()

		user, err := uc.Register(ctx, "alice", "alice@example.com", "hunter2hunter2")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
	})

	t.Run("Register rejects short passwords", func(t *testing.T) {
		_, err := uc.Register(ctx, "bob", "bob@example.com", "short")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("Register rejects a taken username", func(t *testing.T) {
		mockRepo.On("GetByUsername", mock.Anything, "carol").
			Return(&domain.User{Username: "carol"}, nil).Once()

		_, err := uc.Register(ctx, "carol", "carol@example.com", "longenoughpass")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already taken")
	})

	t.Run("Login round trip", func(t *testing.T) {
		mockRepo.On("GetByUsername", mock.Anything, "dave").Return(nil, nil).Once()
		var created *domain.User
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*domain.User) }).
			Return(nil).Once()

		_, err := uc.Register(ctx, "dave", "dave@example.com", "correcthorsebattery")
		require.NoError(t, err)

		mockRepo.On("GetByUsername", mock.Anything, "dave").Return(created, nil)

		session, err := uc.Login(ctx, "dave", "correcthorsebattery")
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.True(t, session.ExpiresAt.After(time.Now()))
		assert.Equal(t, "dave", session.User.Username)

		_, err = uc.Login(ctx, "dave", "wrongpassword")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid username or password")
	})

	t.Run("Login with unknown user matches bad-password error", func(t *testing.T) {
		mockRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, nil).Once()

		_, err := uc.Login(ctx, "nobody", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid username or password")
	})
}

func TestSaveSkills(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects invalid proficiency", func(t *testing.T) {
		uc := usecase.NewSkillUsecase(new(MockSkillRepo))
		err := uc.SaveSkills(ctx, "user1", skillsFixture(
			domain.UserSkill{SkillName: "Python", SkillType: domain.SkillTypeIT, Proficiency: "Expert"},
		))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid skill entry")
	})

	t.Run("Keeps the last entry for duplicate names", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockRepo.On("ReplaceForUser", mock.Anything, "user1", skillsFixture(
			domain.UserSkill{SkillName: "Python", SkillType: domain.SkillTypeIT, Proficiency: domain.ProficiencyAdvanced},
		)).Return(nil).Once()

		uc := usecase.NewSkillUsecase(mockRepo)
		err := uc.SaveSkills(ctx, "user1", skillsFixture(
			domain.UserSkill{SkillName: "Python", SkillType: domain.SkillTypeIT, Proficiency: domain.ProficiencyBeginner},
			domain.UserSkill{SkillName: "python", SkillType: domain.SkillTypeIT, Proficiency: domain.ProficiencyAdvanced},
		))
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Fails without a user identity", func(t *testing.T) {
		uc := usecase.NewSkillUsecase(new(MockSkillRepo))
		err := uc.SaveSkills(ctx, "", nil)
		assert.Error(t, err)
	})
}

func TestRecommendJobs(t *testing.T) {
	ctx := context.Background()
	cat := catalog.New()

	t.Run("Scores overlap as a share of the opening's skills", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(skillsFixture(
			domain.UserSkill{SkillName: "Python", SkillType: domain.SkillTypeIT, Proficiency: domain.ProficiencyAdvanced},
			domain.UserSkill{SkillName: "Django", SkillType: domain.SkillTypeIT, Proficiency: domain.ProficiencyIntermediate},
			domain.UserSkill{SkillName: "MySQL", SkillType: domain.SkillTypeIT, Proficiency: domain.ProficiencyIntermediate},
			domain.UserSkill{SkillName: "Git", SkillType: domain.SkillTypeIT, Proficiency: domain.ProficiencyAdvanced},
		), nil)

		uc := usecase.NewRecommendationUsecase(mockRepo, cat)
		result, err := uc.RecommendJobs(ctx, "user1")
		require.NoError(t, err)

		require.Len(t, result.Matches, 4)
		assert.Equal(t, "Python Developer", result.Matches[0].Title)
		assert.Equal(t, 100.0, result.Matches[0].MatchScore)
		assert.Equal(t, "Java Developer", result.Matches[1].Title)
		assert.Equal(t, 40.0, result.Matches[1].MatchScore)
		assert.Equal(t, "Data Scientist", result.Matches[2].Title)
		assert.Equal(t, 33.3, result.Matches[2].MatchScore)
		assert.Equal(t, "Java Full Stack Developer", result.Matches[3].Title)
		assert.Equal(t, 20.0, result.Matches[3].MatchScore)
	})

	t.Run("Single skill of a four-skill opening scores 25", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(skillsFixture(
			domain.UserSkill{SkillName: "Docker", SkillType: domain.SkillTypeIT, Proficiency: domain.ProficiencyBeginner},
		), nil)

		uc := usecase.NewRecommendationUsecase(mockRepo, cat)
		result, err := uc.RecommendJobs(ctx, "user1")
		require.NoError(t, err)

		require.Len(t, result.Matches, 1)
		assert.Equal(t, "DevOps Engineer", result.Matches[0].Title)
		assert.Equal(t, 25.0, result.Matches[0].MatchScore)
		assert.Equal(t, []string{"Docker"}, result.Matches[0].MatchingSkills)
	})

	t.Run("Openings without overlap are excluded", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(skillsFixture(
			domain.UserSkill{SkillName: "Rust", SkillType: domain.SkillTypeIT, Proficiency: domain.ProficiencyAdvanced},
		), nil)

		uc := usecase.NewRecommendationUsecase(mockRepo, cat)
		result, err := uc.RecommendJobs(ctx, "user1")
		require.NoError(t, err)
		assert.Empty(t, result.Matches)
		assert.Equal(t, []string{"Rust"}, result.UserSkills)
	})
}

func TestAnalyzeGap(t *testing.T) {
	ctx := context.Background()
	cat := catalog.New()

	t.Run("Scores required and preferred lists separately", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(skillsFixture(
			domain.UserSkill{SkillName: "Python", SkillType: domain.SkillTypeIT, Proficiency: domain.ProficiencyAdvanced},
			domain.UserSkill{SkillName: "Django", SkillType: domain.SkillTypeIT, Proficiency: domain.ProficiencyBeginner},
		), nil)

		uc := usecase.NewGapUsecase(mockRepo, cat)
		report, err := uc.AnalyzeGap(ctx, "user1", "Python Developer")
		require.NoError(t, err)

		assert.Equal(t, "Python Developer", report.AnalyzedRole)
		assert.False(t, report.FallbackApplied)

		// (3+1) out of 3*5 attainable points on the required list.
		assert.Equal(t, 26.7, report.RequiredPercentage)
		assert.Equal(t, 0.0, report.PreferredPercentage)
		assert.Equal(t, 18.7, report.OverallReadiness)

		assert.Equal(t, []string{"MySQL", "Git", "REST API"}, report.MissingSkills)

		require.Len(t, report.RequiredSkills, 5)
		python := report.RequiredSkills[0]
		assert.Equal(t, "Python", python.Skill)
		assert.Equal(t, domain.SkillStatusHave, python.Status)
		assert.Equal(t, 3, python.Score)
		assert.Equal(t, 99, python.ProgressPercentage)
	})

	t.Run("Low readiness yields capped suggestions", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockRepo.On("GetByUserID", mock.Anything, "user1").
			Return(skillsFixture(), nil)

		uc := usecase.NewGapUsecase(mockRepo, cat)
		report, err := uc.AnalyzeGap(ctx, "user1", "Full Stack Developer")
		require.NoError(t, err)

		assert.Equal(t, 0.0, report.OverallReadiness)
		require.Len(t, report.ImprovementAreas, 5)

		first := report.ImprovementAreas[0]
		assert.Equal(t, "JavaScript", first.Skill)
		assert.Equal(t, "Complete JavaScript Course", first.Course)
		assert.Equal(t, "Coursera", first.Provider)
		assert.Equal(t, "4-6 weeks", first.Duration)
		assert.Equal(t, "High", first.Priority)

		assert.Equal(t, "Medium", report.ImprovementAreas[2].Priority) // Node.js
	})

	t.Run("Unknown role falls back to the default role", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(skillsFixture(), nil)

		uc := usecase.NewGapUsecase(mockRepo, cat)
		report, err := uc.AnalyzeGap(ctx, "user1", "Quantum Wizard")
		require.NoError(t, err)

		assert.Equal(t, "Quantum Wizard", report.RequestedRole)
		assert.Equal(t, catalog.DefaultRole, report.AnalyzedRole)
		assert.True(t, report.FallbackApplied)
	})

	t.Run("Blank role analyzes the default without a fallback flag", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(skillsFixture(), nil)

		uc := usecase.NewGapUsecase(mockRepo, cat)
		report, err := uc.AnalyzeGap(ctx, "user1", "  ")
		require.NoError(t, err)

		assert.Equal(t, catalog.DefaultRole, report.AnalyzedRole)
		assert.False(t, report.FallbackApplied)
	})

	t.Run("AvailableRoles returns a copy of the role table", func(t *testing.T) {
		uc := usecase.NewGapUsecase(new(MockSkillRepo), cat)
		roles := uc.AvailableRoles()
		assert.Contains(t, roles, "Python Developer")
		roles[0] = "mutated"
		assert.NotEqual(t, "mutated", uc.AvailableRoles()[0])
	})
}

func TestAnalyzeHiringCompanies(t *testing.T) {
	ctx := context.Background()

	t.Run("Aggregates sources and tolerates failures", func(t *testing.T) {
		sources := []domain.PostingSource{
			&fakeSource{name: "LinkedIn", jobs: []domain.JobPosting{
				{Company: "Acme", Title: "Go Developer", Location: "Remote", Platform: "LinkedIn"},
				{Company: "Acme", Title: "Backend Engineer", Location: "Remote", Platform: "LinkedIn"},
			}},
			&fakeSource{name: "Indeed", err: errors.New("blocked")},
		}

		uc := usecase.NewHiringUsecase(sources, nil, time.Minute)
		analysis, err := uc.AnalyzeHiringCompanies(ctx, "developer", "India")
		require.NoError(t, err)

		assert.Equal(t, 2, analysis.TotalJobsFound)
		assert.Equal(t, 1, analysis.TotalCompanies)
		assert.Equal(t, map[string]int{"LinkedIn": 2, "Indeed": 0}, analysis.SourceCounts)
		assert.False(t, analysis.FromCache)
		require.Len(t, analysis.Companies, 1)
		assert.Equal(t, "Acme", analysis.Companies[0].Company)
	})

	t.Run("Requires keywords and location", func(t *testing.T) {
		uc := usecase.NewHiringUsecase(nil, nil, time.Minute)
		_, err := uc.AnalyzeHiringCompanies(ctx, "", "India")
		assert.Error(t, err)
	})

	t.Run("Export returns workbook bytes and a filename", func(t *testing.T) {
		uc := usecase.NewHiringUsecase([]domain.PostingSource{
			&fakeSource{name: "Monster", jobs: []domain.JobPosting{
				{Company: "Globex", Title: "Analyst", Platform: "Monster"},
			}},
		}, nil, time.Minute)

		data, filename, err := uc.ExportHiringCompanies(ctx, "analyst", "India")
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.Contains(t, filename, "hiring_companies_")
		assert.Contains(t, filename, ".xlsx")
	})
}
