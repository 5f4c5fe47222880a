package lab

import "github.com/schynno0/studio/internal/flows"

type ToolsResponse struct {
	Tools []flows.ToolInfo `json:"tools"`
}
