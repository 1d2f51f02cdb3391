package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"employeeapi/internal/model"
	repoMocks "employeeapi/internal/repository/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{ID: 7})

	assert.Equal(t, "Employee not found with id: 7", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, errors.New("other"), ErrNotFound)
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      model.Employee
		setupMocks func(mRepo *repoMocks.MockEmployeeRepository)
		wantID     int64
		wantErrMsg string
	}{
		{
			name:  "happy path",
			input: model.Employee{Name: "Ann", Email: "ann@x.com", Role: "Dev"},
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("Save", ctx, &model.Employee{Name: "Ann", Email: "ann@x.com", Role: "Dev"}).
					Return(&model.Employee{ID: 1, Name: "Ann", Email: "ann@x.com", Role: "Dev"}, nil)
			},
			wantID: 1,
		},
		{
			name:  "incoming id is ignored",
			input: model.Employee{ID: 99, Name: "Ann"},
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("Save", ctx, mock.MatchedBy(func(e *model.Employee) bool {
					return e.ID == 0 && e.Name == "Ann"
				})).Return(&model.Employee{ID: 3, Name: "Ann"}, nil)
			},
			wantID: 3,
		},
		{
			name:  "repository error",
			input: model.Employee{Name: "Ann"},
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("Save", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErrMsg: "db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockEmployeeRepository)
			svc := NewEmployeeService(mRepo, zerolog.Nop())
			tt.setupMocks(mRepo)

			got, err := svc.Create(ctx, tt.input)

			if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, got.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestEmployeeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns repository items", func(t *testing.T) {
		mRepo := new(repoMocks.MockEmployeeRepository)
		svc := NewEmployeeService(mRepo, zerolog.Nop())
		items := []model.Employee{{ID: 1, Name: "Ann"}, {ID: 2, Name: "Bob"}}
		mRepo.On("FindAll", ctx).Return(items, nil)

		got, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, items, got)
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockEmployeeRepository)
		svc := NewEmployeeService(mRepo, zerolog.Nop())
		mRepo.On("FindAll", ctx).Return(nil, errors.New("db fail"))

		got, err := svc.List(ctx)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestEmployeeService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		setupMocks func(mRepo *repoMocks.MockEmployeeRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "found",
			id:   1,
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.Employee{ID: 1, Name: "Ann"}, nil)
			},
		},
		{
			name: "not found",
			id:   5,
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("FindByID", ctx, int64(5)).Return(nil, sql.ErrNoRows)
			},
			wantErr:    ErrNotFound,
			wantErrMsg: "Employee not found with id: 5",
		},
		{
			name: "repository error",
			id:   1,
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("FindByID", ctx, int64(1)).Return(nil, errors.New("db down"))
			},
			wantErrMsg: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockEmployeeRepository)
			svc := NewEmployeeService(mRepo, zerolog.Nop())
			tt.setupMocks(mRepo)

			got, err := svc.Get(ctx, tt.id)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.EqualError(t, err, tt.wantErrMsg)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.NotErrorIs(t, err, ErrNotFound)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.id, got.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites fields and keeps id", func(t *testing.T) {
		mRepo := new(repoMocks.MockEmployeeRepository)
		svc := NewEmployeeService(mRepo, zerolog.Nop())

		mRepo.On("FindByID", ctx, int64(1)).
			Return(&model.Employee{ID: 1, Name: "Ann", Email: "ann@x.com", Role: "Dev"}, nil)
		mRepo.On("Save", ctx, &model.Employee{ID: 1, Name: "Ann B", Email: "ann@x.com", Role: "Lead"}).
			Return(&model.Employee{ID: 1, Name: "Ann B", Email: "ann@x.com", Role: "Lead"}, nil)

		got, err := svc.Update(ctx, 1, model.Employee{ID: 77, Name: "Ann B", Email: "ann@x.com", Role: "Lead"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "Lead", got.Role)
		mRepo.AssertExpectations(t)
	})

	t.Run("empty payload fields are written through", func(t *testing.T) {
		mRepo := new(repoMocks.MockEmployeeRepository)
		svc := NewEmployeeService(mRepo, zerolog.Nop())

		mRepo.On("FindByID", ctx, int64(2)).
			Return(&model.Employee{ID: 2, Name: "Bob", Email: "bob@x.com", Role: "Ops"}, nil)
		mRepo.On("Save", ctx, &model.Employee{ID: 2, Name: "Bobby"}).
			Return(&model.Employee{ID: 2, Name: "Bobby"}, nil)

		_, err := svc.Update(ctx, 2, model.Employee{Name: "Bobby"})

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found skips save", func(t *testing.T) {
		mRepo := new(repoMocks.MockEmployeeRepository)
		svc := NewEmployeeService(mRepo, zerolog.Nop())

		mRepo.On("FindByID", ctx, int64(9)).Return(nil, sql.ErrNoRows)

		got, err := svc.Update(ctx, 9, model.Employee{Name: "x"})

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
		mRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes loaded record", func(t *testing.T) {
		mRepo := new(repoMocks.MockEmployeeRepository)
		svc := NewEmployeeService(mRepo, zerolog.Nop())
		existing := &model.Employee{ID: 1, Name: "Ann"}

		mRepo.On("FindByID", ctx, int64(1)).Return(existing, nil)
		mRepo.On("Delete", ctx, existing).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 1))
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockEmployeeRepository)
		svc := NewEmployeeService(mRepo, zerolog.Nop())

		mRepo.On("FindByID", ctx, int64(4)).Return(nil, sql.ErrNoRows)

		err := svc.Delete(ctx, 4)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "4")
		mRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("repository delete error", func(t *testing.T) {
		mRepo := new(repoMocks.MockEmployeeRepository)
		svc := NewEmployeeService(mRepo, zerolog.Nop())
		existing := &model.Employee{ID: 1}

		mRepo.On("FindByID", ctx, int64(1)).Return(existing, nil)
		mRepo.On("Delete", ctx, existing).Return(errors.New("delete fail"))

		assert.EqualError(t, svc.Delete(ctx, 1), "delete fail")
	})
}
