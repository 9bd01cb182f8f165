package metainfo

// resolutionBuckets 按下限从高到低排列,下限包含在该档内
var resolutionBuckets = []struct {
	min   int
	label string
}{
	{4320, "4K+"},
	{2160, "4K"},
	{1440, "2K"},
	{1080, "1080p"},
	{960, "960p"},
	{720, "720p"},
	{576, "576p"},
	{480, "480p"},
	{360, "360p"},
	{288, "288p"},
	{1, "144p"},
}

// BucketResolution 按画面高度归档分辨率,高度无效时返回空串
func BucketResolution(height int) string {
	for _, b := range resolutionBuckets {
		if height >= b.min {
			return b.label
		}
	}
	return ""
}
