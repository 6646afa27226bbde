package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/devrev"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/domain"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dto"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/repository"
)

// MockAPI is a mock implementation of devrev.API
type MockAPI struct {
	mock.Mock
	calls []string
}

func (m *MockAPI) ListAccounts(ctx context.Context, accountDomain string) ([]domain.Account, error) {
	m.calls = append(m.calls, "ListAccounts")
	args := m.Called(ctx, accountDomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAPI) CreateAccount(ctx context.Context, accountDomain string) (*domain.Account, error) {
	m.calls = append(m.calls, "CreateAccount")
	args := m.Called(ctx, accountDomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAPI) ListContacts(ctx context.Context, email string) ([]domain.Contact, error) {
	m.calls = append(m.calls, "ListContacts")
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockAPI) CreateContact(ctx context.Context, req devrev.ContactCreate) (*domain.Contact, error) {
	m.calls = append(m.calls, "CreateContact")
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockAPI) CreateCustomObject(ctx context.Context, req devrev.CustomObjectCreate) (*domain.CustomObject, error) {
	m.calls = append(m.calls, "CreateCustomObject")
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomObject), args.Error(1)
}

func (m *MockAPI) ListCustomObjects(ctx context.Context, leafType string) ([]domain.CustomObject, error) {
	m.calls = append(m.calls, "ListCustomObjects")
	args := m.Called(ctx, leafType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomObject), args.Error(1)
}

func (m *MockAPI) CreateLink(ctx context.Context, req devrev.LinkCreate) (*domain.Link, error) {
	m.calls = append(m.calls, "CreateLink")
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockAPI) ListCustomSchemas(ctx context.Context) ([]domain.Schema, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Schema), args.Error(1)
}

func (m *MockAPI) ListCustomLinkTypes(ctx context.Context) ([]domain.LinkType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LinkType), args.Error(1)
}

func testInputs() dto.GlobalValues {
	return dto.GlobalValues{
		LeafType:              "Registration ",
		LeafTypeEventCreation: "Airmeet Event",
		CustomLinkTypeID:      "link_type/attendee_of",
		OptInAccountLinking:   true,
	}
}

func registrantPayload(t *testing.T, r domain.Registrant) json.RawMessage {
	t.Helper()
	payload, err := json.Marshal(r)
	assert.NoError(t, err)
	return payload
}

func TestOrchestrator_HandleRegistration_MissingEmail(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	payload := registrantPayload(t, domain.Registrant{ID: "reg-1", Name: "Jane"})

	result := o.HandleRegistration(context.Background(), "d-1", testInputs(), payload)

	assert.False(t, result.Success)
	assert.Equal(t, ErrMissingRegistrant, result.Error)
	mockAPI.AssertNotCalled(t, "ListAccounts")
	mockAPI.AssertNotCalled(t, "ListContacts")
	mockAPI.AssertNotCalled(t, "CreateCustomObject")
}

func TestOrchestrator_HandleRegistration_MalformedPayload(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	result := o.HandleRegistration(context.Background(), "d-1", testInputs(), json.RawMessage(`not json`))

	assert.False(t, result.Success)
	assert.Equal(t, ErrMissingRegistrant, result.Error)
	mockAPI.AssertNotCalled(t, "ListContacts")
}

func TestOrchestrator_HandleRegistration_NewIdentities(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	payload := registrantPayload(t, domain.Registrant{
		ID:               "reg-1",
		Email:            "jane@acme.io",
		Name:             "Jane Q. Public",
		AirmeetName:      "GopherCon",
		RegistrationTime: "2024-05-01T10:30:00Z",
	})

	mockAPI.On("ListAccounts", mock.Anything, "acme.io").Return([]domain.Account{}, nil)
	mockAPI.On("CreateAccount", mock.Anything, "acme.io").Return(&domain.Account{ID: "acc-1"}, nil)
	mockAPI.On("ListContacts", mock.Anything, "jane@acme.io").Return([]domain.Contact{}, nil)
	mockAPI.On("CreateContact", mock.Anything, devrev.ContactCreate{
		DisplayName: "Jane Public",
		Email:       "jane@acme.io",
		ExternalRef: "jane@acme.io",
		Account:     "acc-1",
	}).Return(&domain.Contact{ID: "contact-1"}, nil)

	var created devrev.CustomObjectCreate
	mockAPI.On("CreateCustomObject", mock.Anything, mock.AnythingOfType("devrev.CustomObjectCreate")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(devrev.CustomObjectCreate)
		}).
		Return(&domain.CustomObject{ID: "obj-1"}, nil)

	result := o.HandleRegistration(context.Background(), "d-1", testInputs(), payload)

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, "obj-1", result.CustomObjectID)

	// One of each call, in resolution order
	assert.Equal(t, []string{"ListAccounts", "CreateAccount", "ListContacts", "CreateContact", "CreateCustomObject"}, mockAPI.calls)

	assert.Equal(t, "registration", created.LeafType)
	assert.Equal(t, "reg-1", created.UniqueKey)
	assert.Equal(t, "GopherCon", created.CustomFields[domain.FieldEventName])
	assert.Equal(t, "2024-05-01", created.CustomFields[domain.FieldRegistrationDate])
	assert.Equal(t, "acc-1", created.CustomFields[domain.FieldAccount])
	assert.Equal(t, "contact-1", created.CustomFields[domain.FieldContact])
	assert.True(t, created.CustomSchemaSpec.TenantFragment)
	assert.True(t, created.CustomSchemaSpec.ValidateRequiredFields)

	var sideChannel domain.Registrant
	assert.NoError(t, json.Unmarshal([]byte(created.CustomFields[domain.FieldOtherInfo]), &sideChannel))
	assert.Equal(t, "jane@acme.io", sideChannel.Email)
}

func TestOrchestrator_HandleRegistration_GenericDomainSkipsAccount(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	payload := registrantPayload(t, domain.Registrant{
		ID:               "reg-1",
		Email:            "jane@gmail.com",
		Name:             "Jane",
		RegistrationTime: "2024-05-01T10:30:00Z",
	})

	mockAPI.On("ListContacts", mock.Anything, "jane@gmail.com").
		Return([]domain.Contact{{ID: "contact-1"}}, nil)

	var created devrev.CustomObjectCreate
	mockAPI.On("CreateCustomObject", mock.Anything, mock.AnythingOfType("devrev.CustomObjectCreate")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(devrev.CustomObjectCreate)
		}).
		Return(&domain.CustomObject{ID: "obj-1"}, nil)

	result := o.HandleRegistration(context.Background(), "d-1", testInputs(), payload)

	assert.True(t, result.Success)
	mockAPI.AssertNotCalled(t, "ListAccounts")
	mockAPI.AssertNotCalled(t, "CreateAccount")
	assert.Empty(t, created.CustomFields[domain.FieldAccount])
}

func TestOrchestrator_HandleRegistration_NoContactIsSilentNoOp(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	payload := registrantPayload(t, domain.Registrant{
		ID:    "reg-1",
		Email: "jane@gmail.com",
	})

	mockAPI.On("ListContacts", mock.Anything, "jane@gmail.com").Return(nil, errors.New("transport error"))
	mockAPI.On("CreateContact", mock.Anything, mock.AnythingOfType("devrev.ContactCreate")).
		Return(nil, errors.New("transport error"))

	result := o.HandleRegistration(context.Background(), "d-1", testInputs(), payload)

	assert.True(t, result.Success)
	assert.Empty(t, result.CustomObjectID)
	mockAPI.AssertNotCalled(t, "CreateCustomObject")
}

func TestOrchestrator_HandleRegistration_LinksToMatchedEvent(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	payload := registrantPayload(t, domain.Registrant{
		ID:               "reg-1",
		Email:            "jane@gmail.com",
		RegistrationTime: "2024-05-01T10:30:00Z",
		AirmeetID:        "am-1",
	})

	mockAPI.On("ListContacts", mock.Anything, "jane@gmail.com").
		Return([]domain.Contact{{ID: "contact-1"}}, nil)
	mockAPI.On("CreateCustomObject", mock.Anything, mock.AnythingOfType("devrev.CustomObjectCreate")).
		Return(&domain.CustomObject{ID: "obj-reg"}, nil)
	mockAPI.On("ListCustomObjects", mock.Anything, "airmeet_event").
		Return([]domain.CustomObject{
			{ID: "obj-event", CustomFields: map[string]string{domain.FieldOtherInfo: `{"airmeetId":"am-1"}`}},
		}, nil)
	mockAPI.On("CreateLink", mock.Anything, devrev.LinkCreate{
		CustomLinkType: "link_type/attendee_of",
		Source:         "obj-reg",
		Target:         "obj-event",
	}).Return(&domain.Link{ID: "link-1"}, nil)

	result := o.HandleRegistration(context.Background(), "d-1", testInputs(), payload)

	assert.True(t, result.Success)
	assert.Equal(t, "obj-reg", result.CustomObjectID)
	mockAPI.AssertExpectations(t)
}

func TestOrchestrator_HandleRegistration_LinkFailureIsSwallowed(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	payload := registrantPayload(t, domain.Registrant{
		ID:        "reg-1",
		Email:     "jane@gmail.com",
		AirmeetID: "am-1",
	})

	mockAPI.On("ListContacts", mock.Anything, "jane@gmail.com").
		Return([]domain.Contact{{ID: "contact-1"}}, nil)
	mockAPI.On("CreateCustomObject", mock.Anything, mock.AnythingOfType("devrev.CustomObjectCreate")).
		Return(&domain.CustomObject{ID: "obj-reg"}, nil)
	mockAPI.On("ListCustomObjects", mock.Anything, "airmeet_event").
		Return([]domain.CustomObject{
			{ID: "obj-event", CustomFields: map[string]string{domain.FieldOtherInfo: `{"airmeetId":"am-1"}`}},
		}, nil)
	mockAPI.On("CreateLink", mock.Anything, mock.AnythingOfType("devrev.LinkCreate")).
		Return(nil, errors.New("transport error"))

	result := o.HandleRegistration(context.Background(), "d-1", testInputs(), payload)

	assert.True(t, result.Success)
	assert.Equal(t, "obj-reg", result.CustomObjectID)
}

func TestOrchestrator_HandleRegistration_NoAirmeetIDSkipsLinking(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	payload := registrantPayload(t, domain.Registrant{
		ID:    "reg-1",
		Email: "jane@gmail.com",
	})

	mockAPI.On("ListContacts", mock.Anything, "jane@gmail.com").
		Return([]domain.Contact{{ID: "contact-1"}}, nil)
	mockAPI.On("CreateCustomObject", mock.Anything, mock.AnythingOfType("devrev.CustomObjectCreate")).
		Return(&domain.CustomObject{ID: "obj-reg"}, nil)

	result := o.HandleRegistration(context.Background(), "d-1", testInputs(), payload)

	assert.True(t, result.Success)
	mockAPI.AssertNotCalled(t, "ListCustomObjects")
	mockAPI.AssertNotCalled(t, "CreateLink")
}

func TestOrchestrator_HandleEventCreated_MissingID(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	payload, _ := json.Marshal(domain.EventCreated{Name: "GopherCon"})

	result := o.HandleEventCreated(context.Background(), "d-1", testInputs(), payload)

	assert.False(t, result.Success)
	assert.Equal(t, ErrMissingEvent, result.Error)
	mockAPI.AssertNotCalled(t, "CreateCustomObject")
}

func TestOrchestrator_HandleEventCreated_MissingName(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	payload, _ := json.Marshal(domain.EventCreated{ID: "evt-1"})

	result := o.HandleEventCreated(context.Background(), "d-1", testInputs(), payload)

	assert.False(t, result.Success)
	assert.Equal(t, ErrMissingEvent, result.Error)
	mockAPI.AssertNotCalled(t, "CreateCustomObject")
}

func TestOrchestrator_HandleEventCreated_Success(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	payload, _ := json.Marshal(domain.EventCreated{
		ID:             "evt-1",
		Name:           "GopherCon",
		StartTime:      "2024-05-01 09:00",
		EndTime:        "2024-05-01 17:00",
		Timezone:       "UTC",
		LongDesc:       "A conference",
		AirmeetID:      "am-1",
		OrganiserName:  "Pat",
		OrganiserEmail: "pat@acme.io",
	})

	var created devrev.CustomObjectCreate
	mockAPI.On("CreateCustomObject", mock.Anything, mock.AnythingOfType("devrev.CustomObjectCreate")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(devrev.CustomObjectCreate)
		}).
		Return(&domain.CustomObject{ID: "obj-event"}, nil)

	result := o.HandleEventCreated(context.Background(), "d-1", testInputs(), payload)

	assert.True(t, result.Success)
	assert.Equal(t, "obj-event", result.CustomObjectID)
	assert.Equal(t, "airmeet_event", created.LeafType)
	assert.Equal(t, "evt-1", created.UniqueKey)
	assert.Equal(t, "GopherCon", created.CustomFields[domain.FieldName])
	assert.Equal(t, "2024-05-01 09:00 UTC", created.CustomFields[domain.FieldStartTime])
	assert.Equal(t, "2024-05-01 17:00 UTC", created.CustomFields[domain.FieldEndTime])
	assert.Equal(t, "UTC", created.CustomFields[domain.FieldTimezone])

	var info domain.EventInfo
	assert.NoError(t, json.Unmarshal([]byte(created.CustomFields[domain.FieldOtherInfo]), &info))
	assert.Equal(t, "am-1", info.AirmeetID)
	assert.Equal(t, "Pat", info.OrganiserName)
}

func TestOrchestrator_HandleEventCreated_CreateFailure(t *testing.T) {
	mockAPI := new(MockAPI)
	o := NewOrchestrator(mockAPI, repository.NopRecorder{}, zap.NewNop())

	payload, _ := json.Marshal(domain.EventCreated{ID: "evt-1", Name: "GopherCon"})

	mockAPI.On("CreateCustomObject", mock.Anything, mock.AnythingOfType("devrev.CustomObjectCreate")).
		Return(nil, errors.New("transport error"))

	result := o.HandleEventCreated(context.Background(), "d-1", testInputs(), payload)

	assert.False(t, result.Success)
	assert.Equal(t, ErrEventObjectFailure, result.Error)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-05-01", formatDate("2024-05-01T10:30:00Z"))
	assert.Equal(t, "2024-05-01", formatDate("2024-05-01T23:30:00.123Z"))
	assert.Equal(t, "2024-05-01", formatDate("2024-05-01"))
}
