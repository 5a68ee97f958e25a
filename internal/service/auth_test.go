package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benefix/card-service/internal/apperr"
	"github.com/benefix/card-service/internal/models"
)

func TestVerifyAPIKey(t *testing.T) {
	companies := &fakeCompanyRepo{companies: map[string]*models.Company{
		"acme-key": {ID: 1, Name: "Acme", APIKey: "acme-key"},
	}}
	svc := NewAuthService(companies)

	company, err := svc.VerifyAPIKey("acme-key")
	require.NoError(t, err)
	assert.Equal(t, "Acme", company.Name)

	_, err = svc.VerifyAPIKey("unknown")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindUnauthorized, appErr.Kind)
}
