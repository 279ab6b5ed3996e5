package redirect

import (
	"testing"

	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	ctx := Context{GUID: guid, ViewSource: 20}

	tests := []struct {
		action string
		dest   string
		v1, v2 string
		want   string
	}{
		{ActionSourceCodeTag, "http://ats.example/job/1", "src=dej", "", "http://ats.example/job/1?src=dej"},
		{ActionSourceCodeTag, "http://ats.example/job?id=1", "src=dej", "", "http://ats.example/job?id=1&src=dej"},
		{ActionSourceCodeTag, "http://ats.example/job?id=1", "&src=dej", "", "http://ats.example/job?id=1&src=dej"},
		{ActionSourceCodeTag, "http://a.example/job#apply", "src=dej", "", "http://a.example/job#apply?src=dej"},
		{ActionSourceCodeInsertion, "http://ats.example/job?id=1", "src=dej", "", "http://ats.example/job?src=dej&id=1"},
		{ActionSourceCodeInsertion, "http://ats.example/job", "src=dej", "", "http://ats.example/job?src=dej"},
		{ActionSourceCodeSwitch, "http://ats.example/job?id=1#top", "src=dej", "", "http://ats.example/job?src=dej#top"},
		{ActionSourceURLWrap, "http://ats.example/job?id=1", "http://track.example/?u=", "", "http://track.example/?u=http%3A%2F%2Fats.example%2Fjob%3Fid%3D1"},
		{ActionSourceURLWrapAppend, "http://ats.example/job", "http://track.example/?u=", "src=dej", "http://track.example/?u=http%3A%2F%2Fats.example%2Fjob%3Fsrc%3Ddej"},
		{ActionSourceURLWrapUnencoded, "http://ats.example/job", "http://track.example/?u=", "", "http://track.example/?u=http://ats.example/job"},
		{ActionSourceURLWrapUnencodedAppend, "http://ats.example/job", "http://track.example/?u=", "src=dej", "http://track.example/?u=http://ats.example/job?src=dej"},
		{ActionSwitchLastInstance, "http://a.example/x/job/x", "x", "y", "http://a.example/x/job/y"},
		{ActionReplaceThenAdd, "http://a.example/old/job", "old!!!!new", "src=dej", "http://a.example/new/job?src=dej"},
		{ActionURLSwap, "http://a.example/job", "http://b.example/", "", "http://b.example/"},
		{ActionMicrosite, "http://a.example/job", "http://jobs.example.com/", "", "http://jobs.example.com/0123456789abcdef0123456789abcdef/job/?vs=20"},
		{ActionAmpToAmp, "http://a.example/job?a=1&amp;b=2", "src=dej", "", "http://a.example/job?a=1&b=2&src=dej"},
		{ActionAnchorRedirectIssue, "http://a.example/#/job/1", "src=dej", "", "http://a.example/?src=dej#/job/1"},
		{ActionAnchorRedirectIssue, "http://a.example/job#apply", "src=dej", "", "http://a.example/job?src=dej#apply"},
		{ActionFixURL, "http:/a.example/job", "http:/", "http://", "http://a.example/job"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			got, err := Apply(tt.dest, &models.DestinationManipulation{Action: tt.action, Value1: tt.v1, Value2: tt.v2}, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyUnknownAction(t *testing.T) {
	_, err := Apply("http://a.example", &models.DestinationManipulation{Action: "teleport"}, Context{})
	assert.ErrorIs(t, err, apperrors.ErrUnknownAction)
	assert.False(t, IsKnownAction("teleport"))
	assert.Len(t, KnownActions(), 14)
}

func TestApplyAllOrdersByTypeThenID(t *testing.T) {
	ms := []models.DestinationManipulation{
		{ID: 3, ActionType: 2, Action: ActionSourceCodeTag, Value1: "c=3"},
		{ID: 2, ActionType: 1, Action: ActionSourceCodeTag, Value1: "b=2"},
		{ID: 1, ActionType: 1, Action: ActionSourceCodeTag, Value1: "a=1"},
		{ID: 4, ActionType: 1, Action: "bogus"},
	}

	got, steps := ApplyAll("http://a.example/job", ms, Context{})
	assert.Equal(t, "http://a.example/job?a=1&b=2&c=3", got)
	require.Len(t, steps, 4)
	assert.Equal(t, uint(1), steps[0].ID)
	assert.Equal(t, uint(4), steps[2].ID)
	assert.True(t, steps[2].Skipped)
	assert.Equal(t, "http://a.example/job?a=1&b=2", steps[2].After)
}
