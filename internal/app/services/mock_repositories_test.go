package services

import (
	"context"
	"sort"
	"time"

	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests.

type mockStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: map[int64]*models.Student{}, nextID: 1}
}

func (m *mockStudentRepo) Create(_ context.Context, s *models.Student) error {
	for _, existing := range m.students {
		if existing.Email == s.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.RegNo == s.RegNo {
			return apperrors.ErrRegNoAlreadyExists
		}
	}
	s.ID = m.nextID
	m.nextID++
	cp := *s
	m.students[s.ID] = &cp
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockStudentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range m.students {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockStudentRepo) GetWithSkills(ctx context.Context, id int64) (*models.Student, error) {
	s, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Skills = []models.StudentSkill{}
	return s, nil
}

func (m *mockStudentRepo) Filter(_ context.Context, filter dto.StudentFilter) ([]models.Student, error) {
	var out []models.Student
	for _, s := range m.students {
		if filter.CGPAMin != nil && (s.CGPA == nil || *s.CGPA < *filter.CGPAMin) {
			continue
		}
		if filter.CGPAMax != nil && (s.CGPA == nil || *s.CGPA > *filter.CGPAMax) {
			continue
		}
		if filter.Department != "" && (s.Department == nil || *s.Department != filter.Department) {
			continue
		}
		if filter.Year != "" && (s.Year == nil || *s.Year != filter.Year) {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RegNo < out[j].RegNo })
	return out, nil
}

func (m *mockStudentRepo) Update(_ context.Context, s *models.Student) error {
	if _, ok := m.students[s.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	cp := *s
	m.students[s.ID] = &cp
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(m.students, id)
	return nil
}

type mockAdminRepo struct {
	admins map[int64]*models.Admin
	nextID int64
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: map[int64]*models.Admin{}, nextID: 1}
}

func (m *mockAdminRepo) Create(_ context.Context, a *models.Admin) error {
	for _, existing := range m.admins {
		if existing.Email == a.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	a.ID = m.nextID
	m.nextID++
	cp := *a
	m.admins[a.ID] = &cp
	return nil
}

func (m *mockAdminRepo) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	a, ok := m.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range m.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

type mockCompanyRepo struct {
	companies map[int64]*models.Company
	nextID    int64
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{companies: map[int64]*models.Company{}, nextID: 1}
}

func (m *mockCompanyRepo) Create(_ context.Context, c *models.Company) error {
	for _, existing := range m.companies {
		if existing.Name == c.Name {
			return apperrors.ErrCompanyAlreadyExists
		}
	}
	c.ID = m.nextID
	m.nextID++
	cp := *c
	m.companies[c.ID] = &cp
	return nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id int64) (*models.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, apperrors.ErrCompanyNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCompanyRepo) GetAll(_ context.Context) ([]models.Company, error) {
	var out []models.Company
	for _, c := range m.companies {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockCompanyRepo) Update(_ context.Context, c *models.Company) error {
	if _, ok := m.companies[c.ID]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	cp := *c
	m.companies[c.ID] = &cp
	return nil
}

func (m *mockCompanyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.companies[id]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	delete(m.companies, id)
	return nil
}

type mockDriveRepo struct {
	drives map[int64]*models.PlacementDrive
	nextID int64
}

func newMockDriveRepo() *mockDriveRepo {
	return &mockDriveRepo{drives: map[int64]*models.PlacementDrive{}, nextID: 1}
}

func (m *mockDriveRepo) Create(_ context.Context, d *models.PlacementDrive) error {
	d.ID = m.nextID
	m.nextID++
	cp := *d
	m.drives[d.ID] = &cp
	return nil
}

func (m *mockDriveRepo) GetByID(_ context.Context, id int64) (*models.PlacementDrive, error) {
	d, ok := m.drives[id]
	if !ok {
		return nil, apperrors.ErrDriveNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockDriveRepo) sorted() []models.PlacementDrive {
	var out []models.PlacementDrive
	for _, d := range m.drives {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].RegistrationDeadline, out[j].RegistrationDeadline
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.Before(*dj)
	})
	return out
}

func (m *mockDriveRepo) GetAll(_ context.Context) ([]models.PlacementDrive, error) {
	return m.sorted(), nil
}

func (m *mockDriveRepo) GetUpcoming(_ context.Context, limit int) ([]models.PlacementDrive, error) {
	var out []models.PlacementDrive
	now := time.Now()
	for _, d := range m.sorted() {
		if d.RegistrationDeadline != nil && d.RegistrationDeadline.After(now) {
			out = append(out, d)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockDriveRepo) Update(_ context.Context, d *models.PlacementDrive) error {
	if _, ok := m.drives[d.ID]; !ok {
		return apperrors.ErrDriveNotFound
	}
	cp := *d
	m.drives[d.ID] = &cp
	return nil
}

func (m *mockDriveRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.drives[id]; !ok {
		return apperrors.ErrDriveNotFound
	}
	delete(m.drives, id)
	return nil
}

func (m *mockDriveRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.drives)), nil
}

type mockQueryRepo struct {
	queries map[int64]*models.Query
	nextID  int64
}

func newMockQueryRepo() *mockQueryRepo {
	return &mockQueryRepo{queries: map[int64]*models.Query{}, nextID: 1}
}

func (m *mockQueryRepo) Create(_ context.Context, q *models.Query) error {
	q.ID = m.nextID
	m.nextID++
	q.Public = false
	q.CreatedAt = time.Now()
	cp := *q
	m.queries[q.ID] = &cp
	return nil
}

func (m *mockQueryRepo) GetByID(_ context.Context, id int64) (*models.Query, error) {
	q, ok := m.queries[id]
	if !ok {
		return nil, apperrors.ErrQueryNotFound
	}
	cp := *q
	return &cp, nil
}

func (m *mockQueryRepo) GetByDrive(_ context.Context, driveID int64, public bool) ([]models.Query, error) {
	var out []models.Query
	for _, q := range m.queries {
		if q.DriveID != driveID {
			continue
		}
		if q.Public != public {
			continue
		}
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockQueryRepo) GetRecentPublic(_ context.Context, limit int) ([]models.Query, error) {
	var out []models.Query
	for _, q := range m.queries {
		if q.Public {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockQueryRepo) Update(_ context.Context, q *models.Query) error {
	if _, ok := m.queries[q.ID]; !ok {
		return apperrors.ErrQueryNotFound
	}
	cp := *q
	m.queries[q.ID] = &cp
	return nil
}

func (m *mockQueryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.queries[id]; !ok {
		return apperrors.ErrQueryNotFound
	}
	delete(m.queries, id)
	return nil
}

func (m *mockQueryRepo) CountPending(_ context.Context) (int64, error) {
	var count int64
	for _, q := range m.queries {
		if !q.Public && q.Answer == nil {
			count++
		}
	}
	return count, nil
}

// mockJourneyRepo mirrors the cascade contract of the real repository:
// deleting a journey removes its comments from the shared comment store.
type mockJourneyRepo struct {
	journeys map[int64]*models.Journey
	comments *mockCommentRepo
	nextID   int64
}

func newMockJourneyRepo(comments *mockCommentRepo) *mockJourneyRepo {
	return &mockJourneyRepo{journeys: map[int64]*models.Journey{}, comments: comments, nextID: 1}
}

func (m *mockJourneyRepo) Create(_ context.Context, j *models.Journey) error {
	j.ID = m.nextID
	m.nextID++
	j.Approved = false
	j.CreatedAt = time.Now()
	cp := *j
	m.journeys[j.ID] = &cp
	return nil
}

func (m *mockJourneyRepo) GetByID(_ context.Context, id int64) (*models.Journey, error) {
	j, ok := m.journeys[id]
	if !ok {
		return nil, apperrors.ErrJourneyNotFound
	}
	cp := *j
	return &cp, nil
}

func (m *mockJourneyRepo) GetByDrive(_ context.Context, driveID int64, approvedOnly bool) ([]models.Journey, error) {
	var out []models.Journey
	for _, j := range m.journeys {
		if j.DriveID != driveID {
			continue
		}
		if approvedOnly && !j.Approved {
			continue
		}
		out = append(out, *j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockJourneyRepo) GetRecentApproved(_ context.Context, limit int) ([]models.Journey, error) {
	var out []models.Journey
	for _, j := range m.journeys {
		if j.Approved {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockJourneyRepo) Update(_ context.Context, j *models.Journey) error {
	if _, ok := m.journeys[j.ID]; !ok {
		return apperrors.ErrJourneyNotFound
	}
	cp := *j
	m.journeys[j.ID] = &cp
	return nil
}

func (m *mockJourneyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.journeys[id]; !ok {
		return apperrors.ErrJourneyNotFound
	}
	if m.comments != nil {
		for cid, c := range m.comments.comments {
			if c.JourneyID == id {
				delete(m.comments.comments, cid)
			}
		}
	}
	delete(m.journeys, id)
	return nil
}

func (m *mockJourneyRepo) CountPending(_ context.Context) (int64, error) {
	var count int64
	for _, j := range m.journeys {
		if !j.Approved {
			count++
		}
	}
	return count, nil
}

type mockCommentRepo struct {
	comments map[int64]*models.Comment
	nextID   int64
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: map[int64]*models.Comment{}, nextID: 1}
}

func (m *mockCommentRepo) Create(_ context.Context, c *models.Comment) error {
	c.ID = m.nextID
	m.nextID++
	c.CreatedAt = time.Now()
	cp := *c
	m.comments[c.ID] = &cp
	return nil
}

func (m *mockCommentRepo) GetByID(_ context.Context, id int64) (*models.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, apperrors.ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCommentRepo) GetByJourney(_ context.Context, journeyID int64) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range m.comments {
		if c.JourneyID == journeyID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockCommentRepo) Update(_ context.Context, c *models.Comment) error {
	if _, ok := m.comments[c.ID]; !ok {
		return apperrors.ErrCommentNotFound
	}
	cp := *c
	m.comments[c.ID] = &cp
	return nil
}

func (m *mockCommentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.comments[id]; !ok {
		return apperrors.ErrCommentNotFound
	}
	delete(m.comments, id)
	return nil
}

type mockSkillRepo struct {
	skills map[int64]*models.Skill
	nextID int64
}

func newMockSkillRepo() *mockSkillRepo {
	return &mockSkillRepo{skills: map[int64]*models.Skill{}, nextID: 1}
}

func (m *mockSkillRepo) Create(_ context.Context, s *models.Skill) error {
	for _, existing := range m.skills {
		if existing.Name == s.Name {
			return apperrors.ErrSkillAlreadyExists
		}
	}
	s.ID = m.nextID
	m.nextID++
	cp := *s
	m.skills[s.ID] = &cp
	return nil
}

func (m *mockSkillRepo) CreateBulk(ctx context.Context, skills []models.Skill) ([]models.Skill, error) {
	var inserted []models.Skill
	for i := range skills {
		s := skills[i]
		if err := m.Create(ctx, &s); err != nil {
			continue
		}
		inserted = append(inserted, s)
	}
	return inserted, nil
}

func (m *mockSkillRepo) GetByID(_ context.Context, id int64) (*models.Skill, error) {
	s, ok := m.skills[id]
	if !ok {
		return nil, apperrors.ErrSkillNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSkillRepo) GetAll(_ context.Context) ([]models.Skill, error) {
	var out []models.Skill
	for _, s := range m.skills {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockSkillRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.skills[id]; !ok {
		return apperrors.ErrSkillNotFound
	}
	delete(m.skills, id)
	return nil
}

type mockStudentSkillRepo struct {
	claims map[int64]*models.StudentSkill
	nextID int64
}

func newMockStudentSkillRepo() *mockStudentSkillRepo {
	return &mockStudentSkillRepo{claims: map[int64]*models.StudentSkill{}, nextID: 1}
}

func (m *mockStudentSkillRepo) Create(_ context.Context, c *models.StudentSkill) error {
	c.ID = m.nextID
	m.nextID++
	cp := *c
	m.claims[c.ID] = &cp
	return nil
}

func (m *mockStudentSkillRepo) GetByID(_ context.Context, id int64) (*models.StudentSkill, error) {
	c, ok := m.claims[id]
	if !ok {
		return nil, apperrors.ErrStudentSkillNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockStudentSkillRepo) GetByStudent(_ context.Context, studentID int64) ([]models.StudentSkill, error) {
	var out []models.StudentSkill
	for _, c := range m.claims {
		if c.StudentID == studentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockStudentSkillRepo) Update(_ context.Context, c *models.StudentSkill) error {
	if _, ok := m.claims[c.ID]; !ok {
		return apperrors.ErrStudentSkillNotFound
	}
	cp := *c
	m.claims[c.ID] = &cp
	return nil
}

func (m *mockStudentSkillRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.claims[id]; !ok {
		return apperrors.ErrStudentSkillNotFound
	}
	delete(m.claims, id)
	return nil
}
