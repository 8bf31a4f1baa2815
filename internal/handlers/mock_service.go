package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipeshare/internal/models"
	"recipeshare/internal/service"
)

// ---- Service mocks ----

type mockUsers struct {
	registerUser models.PublicUser
	registerErr  error
	loginResult  service.LoginResult
	loginErr     error
	profileUser  models.PublicUser
	profileErr   error
	updatedUser  models.PublicUser
	updateErr    error
	listUsers    []models.PublicUser
	listErr      error
	parseID      int
	parseErr     error

	lastRegister   service.RegisterInput
	lastLoginUser  string
	lastLoginPass  string
	lastProfileID  int
	lastUpdateID   int
	lastUpdate     service.ProfileUpdate
	lastParseToken string
}

var _ service.Users = (*mockUsers)(nil)

func (m *mockUsers) Register(_ context.Context, in service.RegisterInput) (models.PublicUser, error) {
	m.lastRegister = in
	return m.registerUser, m.registerErr
}

func (m *mockUsers) Login(_ context.Context, username, password string) (service.LoginResult, error) {
	m.lastLoginUser = username
	m.lastLoginPass = password
	return m.loginResult, m.loginErr
}

func (m *mockUsers) Profile(_ context.Context, userID int) (models.PublicUser, error) {
	m.lastProfileID = userID
	return m.profileUser, m.profileErr
}

func (m *mockUsers) UpdateProfile(_ context.Context, userID int, upd service.ProfileUpdate) (models.PublicUser, error) {
	m.lastUpdateID = userID
	m.lastUpdate = upd
	return m.updatedUser, m.updateErr
}

func (m *mockUsers) List(_ context.Context) ([]models.PublicUser, error) {
	return m.listUsers, m.listErr
}

func (m *mockUsers) ParseToken(accessToken string) (int, error) {
	m.lastParseToken = accessToken
	return m.parseID, m.parseErr
}

type mockRecipes struct {
	createRecipe models.Recipe
	createErr    error
	allRecipes   []models.Recipe
	allErr       error
	byIDRecipe   models.Recipe
	byIDErr      error
	ownerRecipes []models.Recipe
	ownerErr     error
	updateRecipe models.Recipe
	updateErr    error
	deleteErr    error
	searchResult []models.Recipe
	searchErr    error
	count        int
	countErr     error

	lastCreateInput service.RecipeInput
	lastCreateOwner int
	lastGetID       int
	lastOwnerID     int
	lastUpdateID    int
	lastUpdate      service.RecipeUpdate
	lastUpdateBy    int
	lastDeleteID    int
	lastDeleteBy    int
	lastQuery       string
}

var _ service.Recipes = (*mockRecipes)(nil)

func (m *mockRecipes) Create(_ context.Context, in service.RecipeInput, ownerID int) (models.Recipe, error) {
	m.lastCreateInput = in
	m.lastCreateOwner = ownerID
	return m.createRecipe, m.createErr
}

func (m *mockRecipes) GetAll(_ context.Context) ([]models.Recipe, error) {
	return m.allRecipes, m.allErr
}

func (m *mockRecipes) GetByID(_ context.Context, id int) (models.Recipe, error) {
	m.lastGetID = id
	return m.byIDRecipe, m.byIDErr
}

func (m *mockRecipes) GetByOwner(_ context.Context, ownerID int) ([]models.Recipe, error) {
	m.lastOwnerID = ownerID
	return m.ownerRecipes, m.ownerErr
}

func (m *mockRecipes) Update(_ context.Context, id int, upd service.RecipeUpdate, callerID int) (models.Recipe, error) {
	m.lastUpdateID = id
	m.lastUpdate = upd
	m.lastUpdateBy = callerID
	return m.updateRecipe, m.updateErr
}

func (m *mockRecipes) Delete(_ context.Context, id, callerID int) error {
	m.lastDeleteID = id
	m.lastDeleteBy = callerID
	return m.deleteErr
}

func (m *mockRecipes) Search(_ context.Context, query string) ([]models.Recipe, error) {
	m.lastQuery = query
	return m.searchResult, m.searchErr
}

func (m *mockRecipes) Count(_ context.Context) (int, error) {
	return m.count, m.countErr
}

type mockActivity struct {
	events []models.ActivityEvent
	err    error

	lastFilter service.ActivityFilter
}

var _ service.Activity = (*mockActivity)(nil)

func (m *mockActivity) List(_ context.Context, f service.ActivityFilter) ([]models.ActivityEvent, error) {
	m.lastFilter = f
	return m.events, m.err
}

// ---- Shared test helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
