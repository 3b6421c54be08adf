// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-zone-keeper/internal/adapter"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/mock"
	"github.com/MKhiriev/go-zone-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestClientAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	container := mock.NewMockContainer(ctrl)
	user := models.User{Login: "alice", Password: "secret"}

	container.EXPECT().Register(gomock.Any(), user).Return(models.User{Login: "alice"}, nil)

	err := NewClientAuthService(container, logger.Nop()).Register(context.Background(), user)
	assert.NoError(t, err)
}

func TestClientAuthService_RegisterConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	container := mock.NewMockContainer(ctrl)
	user := models.User{Login: "alice", Password: "secret"}

	container.EXPECT().Register(gomock.Any(), user).Return(models.User{}, adapter.ErrConflict)

	err := NewClientAuthService(container, logger.Nop()).Register(context.Background(), user)
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestClientAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	container := mock.NewMockContainer(ctrl)
	user := models.User{Login: "alice", Password: "secret"}

	container.EXPECT().Login(gomock.Any(), user).Return(models.User{}, adapter.ErrUnauthorized)

	err := NewClientAuthService(container, logger.Nop()).Login(context.Background(), user)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientAuthService_RejectsEmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientAuthService(mock.NewMockContainer(ctrl), logger.Nop())

	assert.ErrorIs(t, svc.Login(context.Background(), models.User{Login: "alice"}), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.Register(context.Background(), models.User{Password: "x"}), ErrInvalidDataProvided)
}
