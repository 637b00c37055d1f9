package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/valueobjects"
)

// Role identifies which side of the exchange produced a turn.
type Role string

const (
	RoleRequest  Role = "request"
	RoleResponse Role = "response"
)

// MaxImagesPerTurn bounds how many images one request turn may carry.
const MaxImagesPerTurn = 4

var (
	// ErrNoImages indicates an analysis was requested with no images at all.
	ErrNoImages = errors.New("no images provided")

	// ErrTooManyImages indicates a request exceeded MaxImagesPerTurn.
	ErrTooManyImages = errors.New("too many images for one analysis")
)

// Part is one ordered content element of a turn: either text or an image.
type Part struct {
	text  string
	image *valueobjects.ImageData
}

func TextPart(text string) Part {
	return Part{text: text}
}

func ImagePart(image *valueobjects.ImageData) Part {
	return Part{image: image}
}

func (p Part) Text() string {
	return p.text
}

func (p Part) Image() *valueobjects.ImageData {
	return p.image
}

func (p Part) IsImage() bool {
	return p.image != nil
}

// Turn is one atomic entry in a session's history. It is never mutated after
// creation; ordering of turns is the sole memory mechanism for follow-ups.
type Turn struct {
	role  Role
	parts []Part
}

// NewRequestTurn builds a caller-side turn. Image-bearing turns may carry at
// most MaxImagesPerTurn images; oversized requests are rejected before they
// can reach a session history.
func NewRequestTurn(parts ...Part) (*Turn, error) {
	images := 0
	for _, p := range parts {
		if p.IsImage() {
			images++
		}
	}
	if images > MaxImagesPerTurn {
		return nil, fmt.Errorf("%w: got %d, maximum is %d", ErrTooManyImages, images, MaxImagesPerTurn)
	}

	return &Turn{role: RoleRequest, parts: parts}, nil
}

func NewResponseTurn(text string) *Turn {
	return &Turn{role: RoleResponse, parts: []Part{TextPart(text)}}
}

func (t *Turn) Role() Role {
	return t.role
}

func (t *Turn) Parts() []Part {
	return t.parts
}

func (t *Turn) ImageCount() int {
	count := 0
	for _, p := range t.parts {
		if p.IsImage() {
			count++
		}
	}
	return count
}

// Text joins the turn's text parts in order.
func (t *Turn) Text() string {
	var sb strings.Builder
	for _, p := range t.parts {
		if !p.IsImage() {
			sb.WriteString(p.Text())
		}
	}
	return sb.String()
}
