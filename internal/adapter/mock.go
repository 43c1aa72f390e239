package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/models"
)

// mockResponseDelay imitates network latency so the UI's loading states stay
// visible when running against the in-process backend.
const mockResponseDelay = 300 * time.Millisecond

type mockAccount struct {
	password string
	userType models.UserType
	email    string
}

type mockServerAdapter struct {
	mu       sync.RWMutex
	token    string
	accounts map[string]mockAccount
	issued   map[string]string // token → username
	catalog  []models.Subject

	logger *logger.Logger
}

// NewMockServerAdapter constructs an in-process [ServerAdapter] with a static
// user table and a canned catalog. It backs offline runs and tests; no
// network is involved, but every call still sleeps for ~300ms to keep the
// client's loading behaviour honest.
//
// The built-in accounts are TZY/123456 (full user) and tzy/123456 (guest).
// Accounts created through Register live until the process exits.
func NewMockServerAdapter(logger *logger.Logger) ServerAdapter {
	return &mockServerAdapter{
		accounts: map[string]mockAccount{
			"TZY": {password: "123456", userType: models.UserTypeUser, email: "tzy@paperdesk.local"},
			"tzy": {password: "123456", userType: models.UserTypeGuest, email: ""},
		},
		issued:  make(map[string]string),
		catalog: mockCatalog(),
		logger:  logger,
	}
}

func (m *mockServerAdapter) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = strings.TrimSpace(token)
}

func (m *mockServerAdapter) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *mockServerAdapter) delay(ctx context.Context) error {
	select {
	case <-time.After(mockResponseDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *mockServerAdapter) Login(ctx context.Context, username, password string) (models.Session, error) {
	if err := m.delay(ctx); err != nil {
		return models.Session{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[username]
	if !ok || account.password != password {
		return models.Session{}, fmt.Errorf("%w: unknown username or wrong password", ErrInvalidCredentials)
	}

	token := uuid.NewString()
	m.issued[token] = username
	m.token = token

	return models.Session{
		User: models.User{
			Username: username,
			UserType: account.userType,
			Email:    account.email,
		},
		Token: token,
	}, nil
}

func (m *mockServerAdapter) Register(ctx context.Context, username, password, email string) error {
	if err := m.delay(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[username]; exists {
		return fmt.Errorf("%w: username %q is taken", ErrUserAlreadyExists, username)
	}

	m.accounts[username] = mockAccount{
		password: password,
		userType: models.UserTypeUser,
		email:    email,
	}

	return nil
}

// ValidateSession accepts only tokens this adapter issued itself, which makes
// a fresh process reject any session persisted by a previous run.
func (m *mockServerAdapter) ValidateSession(ctx context.Context) error {
	if err := m.delay(ctx); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.token == "" {
		return fmt.Errorf("%w: no token set", ErrUnauthorized)
	}
	if _, ok := m.issued[m.token]; !ok {
		return fmt.Errorf("%w: token not issued by this backend", ErrUnauthorized)
	}

	return nil
}

func (m *mockServerAdapter) Logout(ctx context.Context) error {
	if err := m.delay(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.issued, m.token)
	m.token = ""

	return nil
}

func (m *mockServerAdapter) Subjects(ctx context.Context) ([]models.Subject, error) {
	if err := m.delay(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	// callers get their own copy: the canned catalog is never mutated
	subjects := make([]models.Subject, len(m.catalog))
	copy(subjects, m.catalog)

	return subjects, nil
}

func (m *mockServerAdapter) SearchPapers(ctx context.Context, query string) ([]models.SearchResult, error) {
	if err := m.delay(ctx); err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []models.SearchResult
	for _, subject := range m.catalog {
		for _, topic := range subject.Topics {
			for _, paper := range topic.Papers {
				haystack := strings.ToLower(paper.Name + " " + topic.Name + " " + subject.Name)
				if !strings.Contains(haystack, query) {
					continue
				}
				results = append(results, models.SearchResult{
					Paper:       paper,
					SubjectKey:  subject.Key,
					SubjectName: subject.Name,
					TopicID:     topic.ID,
					TopicName:   topic.Name,
				})
			}
		}
	}

	return results, nil
}

func mockCatalog() []models.Subject {
	return []models.Subject{
		{
			Key:  "math",
			Name: "Математика",
			Icon: "📐",
			Topics: []models.Topic{
				{
					ID:   "math-algebra",
					Name: "Алгебра",
					Papers: []models.Paper{
						{ID: "math-algebra-2023-1", Name: "2023 Июнь, вариант 1", Year: 2023, FileURL: "https://papers.paperdesk.local/math/algebra/2023-1.pdf", SizeBytes: 482_133},
						{ID: "math-algebra-2023-2", Name: "2023 Июнь, вариант 2", Year: 2023, FileURL: "https://papers.paperdesk.local/math/algebra/2023-2.pdf", SizeBytes: 455_902},
						{ID: "math-algebra-2022-1", Name: "2022 Июнь, вариант 1", Year: 2022, FileURL: "https://papers.paperdesk.local/math/algebra/2022-1.pdf", SizeBytes: 430_577},
					},
				},
				{
					ID:   "math-geometry",
					Name: "Геометрия",
					Papers: []models.Paper{
						{ID: "math-geometry-2023-1", Name: "2023 Июнь, вариант 1", Year: 2023, FileURL: "https://papers.paperdesk.local/math/geometry/2023-1.pdf", SizeBytes: 388_410},
						{ID: "math-geometry-2021-1", Name: "2021 Июнь, вариант 1", Year: 2021, FileURL: "https://papers.paperdesk.local/math/geometry/2021-1.pdf", SizeBytes: 362_004},
					},
				},
			},
		},
		{
			Key:  "physics",
			Name: "Физика",
			Icon: "⚛️",
			Topics: []models.Topic{
				{
					ID:   "phy-mechanics",
					Name: "Механика",
					Papers: []models.Paper{
						{ID: "phy-mechanics-2023-1", Name: "2023 Июнь, вариант 1", Year: 2023, FileURL: "https://papers.paperdesk.local/physics/mechanics/2023-1.pdf", SizeBytes: 512_330},
					},
				},
				{
					ID:   "phy-optics",
					Name: "Оптика",
					Papers: []models.Paper{
						{ID: "phy-optics-2022-1", Name: "2022 Июнь, вариант 1", Year: 2022, FileURL: "https://papers.paperdesk.local/physics/optics/2022-1.pdf", SizeBytes: 473_266},
						{ID: "phy-optics-2019-1", Name: "2019 Июнь, вариант 1", Year: 2019, FileURL: "https://papers.paperdesk.local/physics/optics/2019-1.pdf", SizeBytes: 441_850},
					},
				},
			},
		},
		{
			Key:  "chemistry",
			Name: "Химия",
			Icon: "🧪",
			Topics: []models.Topic{
				{
					ID:   "chem-organic",
					Name: "Органическая химия",
					Papers: []models.Paper{
						{ID: "chem-organic-2023-1", Name: "2023 Июнь, вариант 1", Year: 2023, FileURL: "https://papers.paperdesk.local/chemistry/organic/2023-1.pdf", SizeBytes: 397_728},
					},
				},
			},
		},
		{
			Key:  "english",
			Name: "Английский язык",
			Icon: "📖",
			Topics: []models.Topic{
				{
					ID:   "eng-reading",
					Name: "Чтение",
					Papers: []models.Paper{
						{ID: "eng-reading-2023-1", Name: "2023 Июнь, вариант 1", Year: 2023, FileURL: "https://papers.paperdesk.local/english/reading/2023-1.pdf", SizeBytes: 351_119},
						{ID: "eng-reading-2022-1", Name: "2022 Июнь, вариант 1", Year: 2022, FileURL: "https://papers.paperdesk.local/english/reading/2022-1.pdf", SizeBytes: 340_287},
					},
				},
			},
		},
	}
}
