package handlers

import (
	"context"

	"recipeshare/internal/models"
	"recipeshare/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser *models.User
	signUpErr  error
	authUser   *models.User
	authErr    error
	getUser    *models.User
	getErr     error

	signUpCalls []service.SignUpParams
	authCalls   []string
	getCalls    []int
}

func (m *mockAuth) SignUp(_ context.Context, in service.SignUpParams) (*models.User, error) {
	m.signUpCalls = append(m.signUpCalls, in)
	if m.signUpErr != nil {
		return nil, m.signUpErr
	}
	u := *m.signUpUser
	return &u, nil
}

func (m *mockAuth) Authenticate(_ context.Context, username, password string) (*models.User, error) {
	m.authCalls = append(m.authCalls, username)
	if m.authErr != nil {
		return nil, m.authErr
	}
	u := *m.authUser
	return &u, nil
}

func (m *mockAuth) GetByID(_ context.Context, id int) (*models.User, error) {
	m.getCalls = append(m.getCalls, id)
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.getUser == nil {
		return nil, nil
	}
	u := *m.getUser
	return &u, nil
}

type mockRecipes struct {
	createRecipe *models.Recipe
	createErr    error
	listResp     []models.Recipe
	listErr      error
	byUserResp   []models.Recipe
	byUserErr    error

	createCalls []service.CreateRecipeParams
	listCalls   int
}

func (m *mockRecipes) Create(_ context.Context, in service.CreateRecipeParams) (*models.Recipe, error) {
	m.createCalls = append(m.createCalls, in)
	if m.createErr != nil {
		return nil, m.createErr
	}
	r := *m.createRecipe
	r.UserID = in.UserID
	return &r, nil
}

func (m *mockRecipes) List(_ context.Context) ([]models.Recipe, error) {
	m.listCalls++
	return m.listResp, m.listErr
}

func (m *mockRecipes) ListByUser(_ context.Context, userID int) ([]models.Recipe, error) {
	return m.byUserResp, m.byUserErr
}
