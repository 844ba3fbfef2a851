package precompute_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
	"github.com/forgepm/resolve/internal/core/ports/mocks"
	"github.com/forgepm/resolve/internal/engine/precompute"
)

func TestPrecomputer_Precompute_ScopeHadErrorsShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockResolver(ctrl)
	// No Solve call expected: an already-failed setup skips the solver entirely.

	p := precompute.New(resolver)
	result := p.Precompute(nil, domain.DependencyManifests{}, nil, nil, nil, false, true)

	require.Equal(t, precompute.ResultRequired, result.Kind)
	assert.Equal(t, precompute.ReasonErrorsPreviouslyReported, result.Reason.Kind)
}

func TestPrecomputer_Precompute_SuccessfulSolveIsNotRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().Solve(gomock.Any()).Return([]domain.DependencyResolverBinding{}, nil, nil)

	p := precompute.New(resolver)
	result := p.Precompute(nil, domain.DependencyManifests{}, nil, nil, nil, false, false)

	assert.Equal(t, precompute.NotRequired, result)
}

func TestPrecomputer_Precompute_SolverErrorIsReasonOther(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().Solve(gomock.Any()).Return(nil, nil, errors.New("boom"))

	p := precompute.New(resolver)
	result := p.Precompute(nil, domain.DependencyManifests{}, nil, nil, nil, false, false)

	require.Equal(t, precompute.ResultRequired, result.Kind)
	assert.Equal(t, precompute.ReasonOther, result.Reason.Kind)
	assert.Equal(t, "boom", result.Reason.Message)
}

func TestPrecomputer_Precompute_MissingPackageIsReasonNewPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pkg := domain.NewPackageIdentity("example.com/new")
	failure := &ports.SolveFailure{Kind: ports.SolveFailureMissingPackage, Package: pkg}

	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().Solve(gomock.Any()).Return(nil, failure, nil)

	p := precompute.New(resolver)
	result := p.Precompute(nil, domain.DependencyManifests{}, nil, nil, nil, false, false)

	require.Equal(t, precompute.ResultRequired, result.Kind)
	assert.Equal(t, precompute.ReasonNewPackages, result.Reason.Kind)
	assert.Equal(t, pkg, result.Reason.Package)
}

func TestPrecomputer_Precompute_DifferentRequirementIsReasonPackageRequirementChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pkg := domain.NewPackageIdentity("example.com/changed")
	requirement := domain.Requirement{Kind: domain.RequirementVersion, Version: domain.NewVersion("2.0.0")}
	state := domain.NewVersionPin(domain.NewVersion("1.0.0"), "")
	failure := &ports.SolveFailure{
		Kind:        ports.SolveFailureDifferentRequirement,
		Package:     pkg,
		State:       state,
		Requirement: requirement,
	}

	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().Solve(gomock.Any()).Return(nil, failure, nil)

	p := precompute.New(resolver)
	result := p.Precompute(nil, domain.DependencyManifests{}, nil, nil, nil, false, false)

	require.Equal(t, precompute.ResultRequired, result.Kind)
	assert.Equal(t, precompute.ReasonPackageRequirementChange, result.Reason.Kind)
	assert.Equal(t, pkg, result.Reason.Package)
	assert.Equal(t, requirement, result.Reason.Requirement)
	assert.Equal(t, state, result.Reason.State)
}

func TestPrecomputer_Precompute_OtherFailureIsReasonOther(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failure := &ports.SolveFailure{Kind: ports.SolveFailureOther, Message: "unsatisfiable"}

	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().Solve(gomock.Any()).Return(nil, failure, nil)

	p := precompute.New(resolver)
	result := p.Precompute(nil, domain.DependencyManifests{}, nil, nil, nil, false, false)

	require.Equal(t, precompute.ResultRequired, result.Kind)
	assert.Equal(t, precompute.ReasonOther, result.Reason.Kind)
	assert.Equal(t, "unsatisfiable", result.Reason.Message)
}

func TestPrecomputer_Precompute_BuildsConstraintsFromAllRequirementGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := []domain.Requirement{{Kind: domain.RequirementVersion, Version: domain.NewVersion("1.0.0")}}
	edited := []domain.Requirement{{Kind: domain.RequirementUnversioned}}
	extra := []domain.Requirement{{Kind: domain.RequirementRevision, Revision: "abc123"}}
	manifests := domain.DependencyManifests{
		DependencyConstraints: []domain.Requirement{{Kind: domain.RequirementVersion, Version: domain.NewVersion("3.0.0")}},
	}
	pins := map[domain.PackageIdentity]domain.ResolvedPackage{
		domain.NewPackageIdentity("example.com/a"): {},
	}

	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().Solve(gomock.Any()).DoAndReturn(func(constraints ports.SolveConstraints) ([]domain.DependencyResolverBinding, *ports.SolveFailure, error) {
		assert.Len(t, constraints.Requirements, 4)
		assert.True(t, constraints.UpdateBranches)
		assert.Equal(t, pins, constraints.PinHints)
		return nil, nil, nil
	})

	p := precompute.New(resolver)
	result := p.Precompute(root, manifests, edited, extra, pins, true, false)

	assert.Equal(t, precompute.NotRequired, result)
}
