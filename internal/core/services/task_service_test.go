package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/core/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

type TaskServiceTestSuite struct {
	suite.Suite
	mockTaskRepo    *MockTaskRepository
	mockProjectRepo *MockProjectRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.TaskSvcFacade
	ctx             context.Context
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.mockTaskRepo = new(MockTaskRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewTaskService(suite.mockTaskRepo, suite.mockProjectRepo, suite.mockUserRepo)
	suite.ctx = context.Background()
}

func (suite *TaskServiceTestSuite) TestCreateTask_DefaultsStatusAndPriority() {
	suite.mockProjectRepo.On("FindProjectByID", suite.ctx, int64(4)).
		Return(&domain.Project{ID: 4, Name: "Migration"}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, int64(2)).
		Return(&domain.User{ID: 2, Username: "user1"}, nil).Once()
	suite.mockTaskRepo.On("SaveTask", suite.ctx, mock.MatchedBy(func(t domain.Task) bool {
		return t.ProjectID == 4 && t.AssignedTo == 2 &&
			t.Status == domain.TaskPending && t.Priority == domain.PriorityMedium
	})).Return(domain.Task{ID: 8, ProjectID: 4, AssignedTo: 2, Status: domain.TaskPending, Priority: domain.PriorityMedium}, nil).Once()
	suite.mockTaskRepo.On("FindTaskByID", suite.ctx, int64(8)).
		Return(&domain.Task{ID: 8, ProjectID: 4, AssignedTo: 2, Status: domain.TaskPending, Priority: domain.PriorityMedium, ProjectName: "Migration", AssignedUserName: "user1"}, nil).Once()

	task, err := suite.service.CreateTask(suite.ctx, dto.CreateTaskRequest{
		Name: "Write schema", ProjectID: 4, AssignedTo: 2,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.TaskPending, task.Status)
	suite.Equal(domain.PriorityMedium, task.Priority)
	suite.Equal("Migration", task.ProjectName)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestCreateTask_UnknownProject() {
	suite.mockProjectRepo.On("FindProjectByID", suite.ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTask(suite.ctx, dto.CreateTaskRequest{Name: "x", ProjectID: 99, AssignedTo: 2})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "SaveTask", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestCreateTask_UnknownAssignee() {
	suite.mockProjectRepo.On("FindProjectByID", suite.ctx, int64(4)).
		Return(&domain.Project{ID: 4}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTask(suite.ctx, dto.CreateTaskRequest{Name: "x", ProjectID: 4, AssignedTo: 99})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_ReassignValidatesUser() {
	suite.mockTaskRepo.On("FindTaskByID", suite.ctx, int64(8)).
		Return(&domain.Task{ID: 8, AssignedTo: 2}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	assignee := int64(99)
	_, err := suite.service.UpdateTask(suite.ctx, 8, dto.UpdateTaskRequest{AssignedTo: &assignee})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "UpdateTask", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_StatusChange() {
	suite.mockTaskRepo.On("FindTaskByID", suite.ctx, int64(8)).
		Return(&domain.Task{ID: 8, AssignedTo: 2, Status: domain.TaskPending}, nil).Once()
	suite.mockTaskRepo.On("UpdateTask", suite.ctx, mock.MatchedBy(func(t domain.Task) bool {
		return t.ID == 8 && t.Status == domain.TaskCompleted
	})).Return(nil).Once()
	suite.mockTaskRepo.On("FindTaskByID", suite.ctx, int64(8)).
		Return(&domain.Task{ID: 8, AssignedTo: 2, Status: domain.TaskCompleted}, nil).Once()

	status := "completed"
	task, err := suite.service.UpdateTask(suite.ctx, 8, dto.UpdateTaskRequest{Status: &status})

	suite.Require().NoError(err)
	suite.Equal(domain.TaskCompleted, task.Status)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestListTasksByStatus_InvalidStatus() {
	_, err := suite.service.ListTasksByStatus(suite.ctx, domain.TaskStatus("snoozed"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "FindTasksByStatus", mock.Anything, mock.Anything)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
