package binstamp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomainString(t *testing.T) {
	require.Equal(t, "Arguments", DomainArguments.String())
	require.Equal(t, "Memory", DomainMemory.String())
	require.Equal(t, "Runtime", DomainRuntime.String())
	require.Contains(t, Domain(99).String(), "Domain(99)")
}

func TestErrorFormatting(t *testing.T) {
	e := NewError(DomainArguments, CodeInvalidValue, "Test.Operation")
	require.Contains(t, e.Error(), "Test.Operation")
	require.Contains(t, e.Error(), "invalid value")
	require.Nil(t, e.Unwrap())
}

func TestWrapErrorPreservesCause(t *testing.T) {
	cause := errors.New("underlying failure")
	e := WrapError(DomainMemory, CodeInsufficient, "Test.Operation", cause)

	require.ErrorIs(t, e, cause)
	require.Contains(t, e.Error(), "underlying failure")
}

func TestRecordingSinkCapturesReports(t *testing.T) {
	sink := &RecordingSink{}
	report(sink, DomainArguments, CodeValueTooSmall, "ctx")
	report(sink, DomainMemory, CodeInsufficient, "ctx2")

	require.Len(t, sink.Reports, 2)
	require.Equal(t, SinkReport{Domain: DomainArguments, Code: CodeValueTooSmall, Context: "ctx"}, sink.Reports[0])
	require.Equal(t, SinkReport{Domain: DomainMemory, Code: CodeInsufficient, Context: "ctx2"}, sink.Reports[1])
}

func TestReportNilSinkIsNoop(t *testing.T) {
	require.NotPanics(t, func() {
		report(nil, DomainArguments, CodeInvalidValue, "ctx")
	})
}
