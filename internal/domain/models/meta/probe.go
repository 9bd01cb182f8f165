package meta

// ProbeResult 视频探测结果,字段与 ffprobe -show_streams 的 JSON 一致
type ProbeResult struct {
	Streams []ProbeStream `json:"streams"`
}

// ProbeStream 单条流
type ProbeStream struct {
	CodecType  string            `json:"codec_type"`
	CodecName  string            `json:"codec_name"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	ColorSpace string            `json:"color_space"`
	Tags       map[string]string `json:"tags"`
}
