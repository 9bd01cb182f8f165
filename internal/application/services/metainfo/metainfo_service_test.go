package metainfo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/easayliu/alist-aria2-metainfo/internal/domain/services/metainfo"
	"github.com/easayliu/alist-aria2-metainfo/internal/domain/valueobjects"
	"github.com/easayliu/alist-aria2-metainfo/internal/infrastructure/aria2"
	apperrors "github.com/easayliu/alist-aria2-metainfo/internal/shared/errors"
)

type fakeDownloads struct {
	statuses map[string]*aria2.StatusResult
	stopped  []aria2.StatusResult
	err      error
}

func (f *fakeDownloads) GetStatus(ctx context.Context, gid string) (*aria2.StatusResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	status, ok := f.statuses[gid]
	if !ok {
		return nil, &aria2.RPCError{Code: 1, Message: "GID " + gid + " is not found"}
	}
	return status, nil
}

func (f *fakeDownloads) GetStopped(ctx context.Context, offset, num int) ([]aria2.StatusResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stopped, nil
}

func completedTask(gid string, paths ...string) aria2.StatusResult {
	status := aria2.StatusResult{GID: gid, Status: aria2.StatusComplete, Dir: "/downloads"}
	for _, p := range paths {
		status.Files = append(status.Files, aria2.File{Path: p, Length: "1073741824", Selected: "true"})
	}
	return status
}

func newTestService(downloads DownloadReader, words *CustomWords) *Service {
	return NewService(domain.NewParser(nil, nil), words, downloads, Options{})
}

func TestServiceParse(t *testing.T) {
	words := CompileCustomWords([]string{"Prerelease", "OldShow => Show"}, []string{"国语"})
	svc := newTestService(nil, words)

	result, err := svc.Parse(context.Background(), ParseRequest{Title: "OldShow.S01.E02.国语.Prerelease", Subtitle: "第3集"})

	require.NoError(t, err)
	assert.Equal(t, "OldShow.S01.E02.国语.Prerelease", result.OrgString)
	assert.Equal(t, []string{"Prerelease", "OldShow => Show"}, result.AppliedWords)
	assert.Equal(t, "国语", result.Customization)
	assert.Equal(t, valueobjects.MediaTypeTV, result.Type)
	assert.Equal(t, 1, *result.BeginSeason)
	assert.Equal(t, 3, *result.BeginEpisode, "副标题优先")
}

func TestServiceParseValidation(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.Parse(context.Background(), ParseRequest{Title: "  "})
	assert.Equal(t, apperrors.ErrorCodeInvalidRequest, apperrors.CodeOf(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Parse(ctx, ParseRequest{Title: "Show"})
	assert.Equal(t, apperrors.ErrorCodeTimeout, apperrors.CodeOf(err))
}

func TestServiceParseBatch(t *testing.T) {
	svc := newTestService(nil, nil)

	results, err := svc.ParseBatch(context.Background(), []ParseRequest{
		{Title: "Movie.2020.1080p"},
		{Title: "Show.S02.E05"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, valueobjects.MediaTypeMovie, results[0].Type)
	assert.Equal(t, "S02E05", results[1].SeasonEpisode())

	_, err = svc.ParseBatch(context.Background(), nil)
	assert.Equal(t, apperrors.ErrorCodeInvalidRequest, apperrors.CodeOf(err))

	_, err = svc.ParseBatch(context.Background(), []ParseRequest{{Title: "ok"}, {Title: ""}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items[1]")

	_, err = svc.ParseBatch(context.Background(), make([]ParseRequest, MaxBatchSize+1))
	assert.Equal(t, apperrors.ErrorCodeInvalidRequest, apperrors.CodeOf(err))
}

func TestInspectDownload(t *testing.T) {
	task := completedTask("abc",
		"/downloads/Show/Show.S01.E03.1080p.mkv",
		"/downloads/Show/Show.S01.E03.nfo",
		"/downloads/Show/Show.花絮.E01.mp4",
	)
	task.Files = append(task.Files, aria2.File{Path: "/downloads/Show/Show.S01.E04.mkv", Selected: "false"})
	svc := newTestService(&fakeDownloads{statuses: map[string]*aria2.StatusResult{"abc": &task}}, nil)

	info, err := svc.InspectDownload(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "abc", info.GID)
	assert.Equal(t, aria2.StatusComplete, info.Status)
	require.Len(t, info.Files, 2)

	first := info.Files[0]
	assert.Equal(t, "Show.S01.E03.1080p.mkv", first.Name)
	assert.Equal(t, int64(1073741824), first.Size)
	assert.False(t, first.Extra)
	assert.Equal(t, "S01E03", first.Metadata.SeasonEpisode())

	assert.True(t, info.Files[1].Extra)
	assert.Equal(t, "behind_the_scenes", info.Files[1].ExtraKind)
}

func TestInspectDownloadErrors(t *testing.T) {
	tests := []struct {
		name      string
		downloads DownloadReader
		gid       string
		want      apperrors.ErrorCode
	}{
		{"空GID", &fakeDownloads{}, "", apperrors.ErrorCodeInvalidRequest},
		{"未配置aria2", nil, "abc", apperrors.ErrorCodeServiceUnavailable},
		{"任务不存在", &fakeDownloads{}, "missing", apperrors.ErrorCodeNotFound},
		{"aria2不可用", &fakeDownloads{err: errors.New("connection refused")}, "abc", apperrors.ErrorCodeServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.downloads, nil)
			_, err := svc.InspectDownload(context.Background(), tt.gid)
			assert.Equal(t, tt.want, apperrors.CodeOf(err))
		})
	}
}
