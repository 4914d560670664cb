/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/device-management-toolkit/netinfo/internal/adapter"
	"github.com/device-management-toolkit/netinfo/internal/lease"
	"github.com/device-management-toolkit/netinfo/pkg/network"
	"github.com/device-management-toolkit/netinfo/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPresenter is a mock implementation of Presenter
type MockPresenter struct {
	mock.Mock
}

func (m *MockPresenter) DisplayAdapter(info *adapter.Info) {
	m.Called(info)
}

func (m *MockPresenter) DisplayStatus(message string) {
	m.Called(message)
}

func (m *MockPresenter) SetRenewalAvailable(available bool) {
	m.Called(available)
}

type stubSelector struct {
	info adapter.Info
	ok   bool
	err  error
}

func (s stubSelector) SelectPrimaryAdapter(ctx context.Context) (adapter.Info, bool, error) {
	return s.info, s.ok, s.err
}

type stubRenewer struct {
	err   error
	calls int
}

func (r *stubRenewer) RenewLease(ctx context.Context) error {
	r.calls++

	return r.err
}

type queuedScheduler struct {
	funcs []func()
}

func (s *queuedScheduler) AfterFunc(d time.Duration, f func()) {
	s.funcs = append(s.funcs, f)
}

func TestRefresh_DHCPAdapter(t *testing.T) {
	info := adapter.Info{Name: "Ethernet", MAC: "aa:bb:cc:dd:ee:ff", IP: "10.0.0.5", Status: adapter.StatusActive, DHCPEnabled: true}

	presenter := &MockPresenter{}
	presenter.On("DisplayAdapter", &info).Once()
	presenter.On("SetRenewalAvailable", true).Once()
	presenter.On("DisplayStatus", english.Refreshed).Once()

	svc := NewService(stubSelector{info: info, ok: true}, &stubRenewer{}, presenter, MessagesFor("en"))

	got, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &info, got)
	presenter.AssertExpectations(t)
}

func TestRefresh_StaticAdapter(t *testing.T) {
	info := adapter.Info{Name: "Ethernet", MAC: "aa:bb:cc:dd:ee:ff", IP: "10.0.0.5", Status: adapter.StatusActive}

	presenter := &MockPresenter{}
	presenter.On("DisplayAdapter", &info).Once()
	presenter.On("SetRenewalAvailable", false).Once()
	presenter.On("DisplayStatus", english.StaticAddress).Once()

	svc := NewService(stubSelector{info: info, ok: true}, &stubRenewer{}, presenter, MessagesFor(""))

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	presenter.AssertExpectations(t)
}

func TestRefresh_NoAdapter(t *testing.T) {
	presenter := &MockPresenter{}
	presenter.On("DisplayAdapter", (*adapter.Info)(nil)).Once()
	presenter.On("SetRenewalAvailable", false).Once()
	presenter.On("DisplayStatus", korean.NoAdapter).Once()

	svc := NewService(stubSelector{}, &stubRenewer{}, presenter, MessagesFor("ko"))

	got, err := svc.Refresh(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
	presenter.AssertExpectations(t)
}

func TestRefresh_LookupFailureShowsNoAdapter(t *testing.T) {
	presenter := &MockPresenter{}
	presenter.On("DisplayAdapter", (*adapter.Info)(nil)).Once()
	presenter.On("SetRenewalAvailable", false).Once()
	presenter.On("DisplayStatus", english.NoAdapter).Once()

	lookupErr := errors.New("enumeration failed")
	svc := NewService(stubSelector{err: lookupErr}, &stubRenewer{}, presenter, english)

	got, err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, lookupErr)
	assert.Nil(t, got)
	presenter.AssertExpectations(t)
}

func TestRenew_Success(t *testing.T) {
	presenter := &MockPresenter{}
	presenter.On("SetRenewalAvailable", false).Once()
	presenter.On("DisplayStatus", english.Renewing).Once()
	presenter.On("DisplayStatus", english.RenewComplete).Once()

	renewer := &stubRenewer{}
	svc := NewService(stubSelector{}, renewer, presenter, english)

	require.NoError(t, svc.Renew(context.Background()))
	assert.Equal(t, 1, renewer.calls)
	presenter.AssertExpectations(t)
}

func TestRenew_FailureMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "command not found",
			err: &lease.Error{Kind: lease.KindCommandNotFound, Step: "release",
				Err: &network.CommandError{Command: "ipconfig /release", Kind: network.KindNotFound}},
			expected: "Error: 'ipconfig' command not found.",
		},
		{
			name: "permission denied",
			err: &lease.Error{Kind: lease.KindPermissionDenied, Step: "release",
				Err: &network.CommandError{Command: "ipconfig /release", Kind: network.KindExitStatus, ExitCode: 1}},
			expected: english.PermissionDenied,
		},
		{
			name:     "unknown",
			err:      &lease.Error{Kind: lease.KindUnknown, Step: "renew", Err: errors.New("pipe closed")},
			expected: "Unknown error: pipe closed",
		},
		{
			name:     "not a lease error",
			err:      errors.New("weird"),
			expected: "Unknown error: weird",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presenter := &MockPresenter{}
			presenter.On("SetRenewalAvailable", false).Once()
			presenter.On("DisplayStatus", english.Renewing).Once()
			presenter.On("DisplayStatus", tt.expected).Once()

			svc := NewService(stubSelector{}, &stubRenewer{err: tt.err}, presenter, english)

			err := svc.Renew(context.Background())
			assert.ErrorIs(t, err, tt.err)
			presenter.AssertExpectations(t)
		})
	}
}

func TestMessagesForError_Korean(t *testing.T) {
	err := &lease.Error{Kind: lease.KindCommandNotFound, Step: "release",
		Err: &network.CommandError{Command: "dhclient -r", Kind: network.KindNotFound}}

	assert.Equal(t, "오류: 'dhclient' 명령을 찾을 수 없습니다.", korean.ForError(err))
	assert.Equal(t, korean.PermissionDenied, korean.ForError(&lease.Error{Kind: lease.KindPermissionDenied}))
}

func TestMessagesFor(t *testing.T) {
	assert.Equal(t, korean, MessagesFor("KO"))
	assert.Equal(t, korean, MessagesFor("ko-KR"))
	assert.Equal(t, english, MessagesFor("en"))
	assert.Equal(t, english, MessagesFor("fr"))
}

// The whole cycle on the fake facade: refresh, renew, deferred refresh.
func TestService_RenewCycle(t *testing.T) {
	dump := "Ethernet adapter Ethernet:\n\n" +
		"   Physical Address. . . . . . . . . : AA-BB-CC-DD-EE-01\n" +
		"   DHCP Enabled. . . . . . . . . . . : Yes\n"

	fake := &network.FakeOSNetworker{
		Table: []network.Interface{{Name: "Ethernet", HardwareAddr: "aa:bb:cc:dd:ee:01", Up: true, Addrs: []string{"10.0.0.5/8"}}},
		Dump:  []byte(dump),
	}

	tokens := adapter.DefaultTokenTable()
	selector := adapter.NewSelector(fake, tokens, adapter.NewClassifier(fake, tokens, nil))
	scheduler := &queuedScheduler{}
	controller := lease.NewController(fake, scheduler, nil)

	presenter := &MockPresenter{}
	presenter.On("DisplayAdapter", mock.Anything)
	presenter.On("DisplayStatus", mock.Anything)
	presenter.On("SetRenewalAvailable", mock.Anything)

	svc := NewService(selector, controller, presenter, english)
	controller.SetRefresh(svc.DeferredRefresh(context.Background()))

	info, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.NotNil(t, info)
	require.True(t, info.DHCPEnabled)

	require.NoError(t, svc.Renew(context.Background()))
	require.Len(t, scheduler.funcs, 1)

	scheduler.funcs[0]()

	assert.Equal(t, 2, fake.CallCount(network.CallInterfaces))
	assert.Equal(t, 1, fake.CallCount(network.CallRelease))
	assert.Equal(t, 1, fake.CallCount(network.CallRenew))
	presenter.AssertCalled(t, "DisplayStatus", english.RenewComplete)
	presenter.AssertNumberOfCalls(t, "DisplayAdapter", 2)
}

func TestService_DeferredRefreshSwallowsErrors(t *testing.T) {
	presenter := &MockPresenter{}
	presenter.On("DisplayAdapter", mock.Anything)
	presenter.On("DisplayStatus", mock.Anything)
	presenter.On("SetRenewalAvailable", mock.Anything)

	svc := NewService(stubSelector{err: utils.OSNetworkInterfacesLookupFailed}, &stubRenewer{}, presenter, english)

	assert.NotPanics(t, svc.DeferredRefresh(context.Background()))
	presenter.AssertCalled(t, "DisplayStatus", english.NoAdapter)
}

// MockReportingPresenter also records renewal outcomes
type MockReportingPresenter struct {
	MockPresenter
}

func (m *MockReportingPresenter) DisplayRenewal(ok bool, message string) {
	m.Called(ok, message)
}

func TestRenew_ReportsOutcome(t *testing.T) {
	permissionErr := &lease.Error{Kind: lease.KindPermissionDenied, Step: "release"}

	tests := []struct {
		name    string
		err     error
		ok      bool
		message string
	}{
		{"success", nil, true, english.RenewComplete},
		{"permission denied", permissionErr, false, english.PermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presenter := &MockReportingPresenter{}
			presenter.On("SetRenewalAvailable", false).Once()
			presenter.On("DisplayStatus", english.Renewing).Once()
			presenter.On("DisplayStatus", tt.message).Once()
			presenter.On("DisplayRenewal", tt.ok, tt.message).Once()

			svc := NewService(stubSelector{}, &stubRenewer{err: tt.err}, presenter, english)

			err := svc.Renew(context.Background())
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}

			presenter.AssertExpectations(t)
		})
	}
}

func TestFlush_HoldsPresenterLock(t *testing.T) {
	svc := NewService(stubSelector{}, &stubRenewer{}, &MockPresenter{}, english)

	flushErr := errors.New("write failed")

	err := svc.Flush(func() error {
		// a refresh arriving now would have to wait
		assert.False(t, svc.mu.TryLock())

		return flushErr
	})
	assert.ErrorIs(t, err, flushErr)

	assert.True(t, svc.mu.TryLock())
	svc.mu.Unlock()
}
