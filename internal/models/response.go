package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime is the currentTime stamp of a response, in Unix milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

func NewResponse(code int, data interface{}, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     1,
	}
}

func NewOKResponse(data interface{}) ResponseModel {
	return NewResponse(http.StatusOK, data, "OK")
}

// NewEntryResponse wraps a single object as {"entry": ...}.
func NewEntryResponse(entry interface{}) ResponseModel {
	return NewOKResponse(map[string]interface{}{
		"entry": entry,
	})
}

// NewListResponse wraps a collection as {"list": ...}.
func NewListResponse(list interface{}) ResponseModel {
	return NewOKResponse(map[string]interface{}{
		"list": list,
	})
}
