package controllers_test

import (
	"net/http"
	"testing"

	"civiclink-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	r, _ := setupTest(t)

	w := performRequest(r, http.MethodGet, "/api/v1/auth/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Auth route up and running", decodeBody(t, w)["message"])
}

func TestSignUpCitizen(t *testing.T) {
	r, db := setupTest(t)

	w := performRequest(r, http.MethodPost, "/api/v1/auth/signUp", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Citizen", body["userType"])
	assert.Equal(t, "Citizen registered successfully", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Asha", data["name"])
	assert.NotContains(t, data, "password")

	var citizen models.Citizen
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&citizen).Error)
	assert.NotEqual(t, "secret123", citizen.Password, "password must be stored hashed")
	assert.True(t, citizen.ComparePassword("secret123"))
}

func TestSignUpDuplicateCitizen(t *testing.T) {
	r, _ := setupTest(t)

	payload := map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
	}

	w := performRequest(r, http.MethodPost, "/api/v1/auth/signUp", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(r, http.MethodPost, "/api/v1/auth/signUp", payload)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Citizen already exists", decodeBody(t, w)["error"])
}

func TestSignUpMLA(t *testing.T) {
	r, db := setupTest(t)

	payload := map[string]string{
		"name":     "A",
		"email":    "a@mla.com",
		"password": "secret123",
	}

	w := performRequest(r, http.MethodPost, "/api/v1/auth/signUp", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "MLA", decodeBody(t, w)["userType"])

	// An MLA signup must never create a citizen record
	var citizenCount int64
	require.NoError(t, db.Model(&models.Citizen{}).Count(&citizenCount).Error)
	assert.Zero(t, citizenCount)

	var mla models.MLA
	require.NoError(t, db.Where("email = ?", "a@mla.com").First(&mla).Error)
	assert.Equal(t, "A", mla.Name)

	w = performRequest(r, http.MethodPost, "/api/v1/auth/signUp", payload)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "MLA already exists", decodeBody(t, w)["error"])
}

func TestSignUpMLAWithShortPassword(t *testing.T) {
	r, db := setupTest(t)

	// Only presence of the three fields is checked; a one-character password
	// still classifies and registers.
	w := performRequest(r, http.MethodPost, "/api/v1/auth/signUp", map[string]string{
		"name":     "A",
		"email":    "a@mla.com",
		"password": "x",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "MLA", decodeBody(t, w)["userType"])

	var mla models.MLA
	require.NoError(t, db.Where("email = ?", "a@mla.com").First(&mla).Error)

	w = performRequest(r, http.MethodPost, "/api/v1/auth/signUp", map[string]string{
		"name":     "A",
		"email":    "a@mla.com",
		"password": "x",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "MLA already exists", decodeBody(t, w)["error"])
}

func TestSignUpPlainStringEmailCreatesCitizen(t *testing.T) {
	r, db := setupTest(t)

	// Anything without an @mla.com or @org.com suffix falls through to the
	// citizen branch, even when it is not shaped like an address.
	w := performRequest(r, http.MethodPost, "/api/v1/auth/signUp", map[string]string{
		"name":     "Asha",
		"email":    "not-an-email",
		"password": "x",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Citizen", decodeBody(t, w)["userType"])

	var citizen models.Citizen
	require.NoError(t, db.Where("email = ?", "not-an-email").First(&citizen).Error)
	assert.True(t, citizen.ComparePassword("x"))
}

func TestSignUpOrganization(t *testing.T) {
	r, db := setupTest(t)

	payload := map[string]string{
		"name":     "Water Works",
		"email":    "water@org.com",
		"password": "secret123",
	}

	w := performRequest(r, http.MethodPost, "/api/v1/auth/signUp", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Organization", decodeBody(t, w)["userType"])

	var org models.Organization
	require.NoError(t, db.Where("contact_email = ?", "water@org.com").First(&org).Error)
	assert.Equal(t, "General", org.Category)

	w = performRequest(r, http.MethodPost, "/api/v1/auth/signUp", payload)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Organization already exists", decodeBody(t, w)["error"])
}

func TestSignUpMissingFields(t *testing.T) {
	r, _ := setupTest(t)

	w := performRequest(r, http.MethodPost, "/api/v1/auth/signUp", map[string]string{
		"name": "Asha",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", decodeBody(t, w)["error"])
}

func signUpCitizen(t *testing.T, r http.Handler, name, email, password string) {
	t.Helper()
	w := performRequest(r, http.MethodPost, "/api/v1/auth/signUp", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestLoginUnknownCitizen(t *testing.T) {
	r, _ := setupTest(t)

	w := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Citizen not found", decodeBody(t, w)["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupTest(t)
	signUpCitizen(t, r, "Asha", "asha@example.com", "secret123")

	w := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid password", decodeBody(t, w)["message"])
}

func TestLoginLinksConstituency(t *testing.T) {
	r, db := setupTest(t)
	signUpCitizen(t, r, "Asha", "asha@example.com", "secret123")

	require.NoError(t, db.Create(&models.MLA{
		Name: "Rao", Email: "rao@mla.com", Party: "ABC", Constituency: "Khairtabad",
	}).Error)
	require.NoError(t, db.Create(&models.MLA{
		Name: "Iyer", Email: "iyer@mla.com", Party: "XYZ", Constituency: "Banjara Hills",
	}).Error)
	require.NoError(t, db.Create(&models.Organization{
		Name: "Clean Streets", Category: "Sanitation", Constituency: "Khairtabad",
		ContactEmail: "clean@org.com",
	}).Error)

	w := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":        "asha@example.com",
		"password":     "secret123",
		"constituency": "Khairtabad",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	citizenView := body["citizen"].(map[string]interface{})
	assert.Equal(t, "Khairtabad", citizenView["constituency"])
	assert.ElementsMatch(t, []interface{}{"Rao"}, citizenView["linked_MLAs"])
	assert.ElementsMatch(t, []interface{}{"Clean Streets"}, citizenView["linked_Organizations"])

	// Constituency is persisted and the link actually lands in the join table
	var citizen models.Citizen
	require.NoError(t, db.Preload("LinkedMLAs").Where("email = ?", "asha@example.com").First(&citizen).Error)
	assert.Equal(t, "Khairtabad", citizen.Constituency)
	require.Len(t, citizen.LinkedMLAs, 1)
	assert.Equal(t, "Rao", citizen.LinkedMLAs[0].Name)
}

func TestLoginLinksAreAdditive(t *testing.T) {
	r, db := setupTest(t)
	signUpCitizen(t, r, "Asha", "asha@example.com", "secret123")

	require.NoError(t, db.Create(&models.MLA{
		Name: "Rao", Email: "rao@mla.com", Constituency: "Khairtabad",
	}).Error)
	require.NoError(t, db.Create(&models.MLA{
		Name: "Iyer", Email: "iyer@mla.com", Constituency: "Banjara Hills",
	}).Error)

	for _, constituency := range []string{"Khairtabad", "Banjara Hills"} {
		w := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":        "asha@example.com",
			"password":     "secret123",
			"constituency": constituency,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	// The first login's link survives the second login
	var citizen models.Citizen
	require.NoError(t, db.Preload("LinkedMLAs").Where("email = ?", "asha@example.com").First(&citizen).Error)
	assert.Len(t, citizen.LinkedMLAs, 2)
	assert.Equal(t, "Banjara Hills", citizen.Constituency)
}

func TestLoginWithoutConstituencySkipsLinkage(t *testing.T) {
	r, db := setupTest(t)
	signUpCitizen(t, r, "Asha", "asha@example.com", "secret123")

	// An MLA whose constituency was never set must not match an empty value
	require.NoError(t, db.Create(&models.MLA{Name: "Rao", Email: "rao@mla.com"}).Error)

	w := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	citizenView := body["citizen"].(map[string]interface{})
	assert.Empty(t, citizenView["linked_MLAs"])

	var citizen models.Citizen
	require.NoError(t, db.Preload("LinkedMLAs").Where("email = ?", "asha@example.com").First(&citizen).Error)
	assert.Empty(t, citizen.LinkedMLAs)
	assert.Empty(t, citizen.Constituency)
}

func TestGetMe(t *testing.T) {
	r, _ := setupTest(t)
	signUpCitizen(t, r, "Asha", "asha@example.com", "secret123")

	w := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeBody(t, w)["token"].(string)

	w = performRequest(r, http.MethodGet, "/api/v1/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "asha@example.com", decodeBody(t, w)["email"])

	w = performRequest(r, http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
