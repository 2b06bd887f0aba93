// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package example_test

import (
	"errors"
	"flag"
	"fmt"
	"testing"

	"fillmore-labs.com/optionset"
	"fillmore-labs.com/optionset/internal/config"
	. "fillmore-labs.com/optionset/internal/example"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  ImageFormat
		want string
	}{
		{"png and jpeg", ImageFormatPNG | ImageFormatJPEG, "ImageFormat (0011): png, jpeg"},
		{"none", ImageFormatNone, "ImageFormat (0000): "},
		{"all", ImageFormatAll, "ImageFormat (1111): png, jpeg, svg, gif"},
		{"web", ImageFormatWeb, "ImageFormat (0111): png, jpeg, svg"},
		{"out of catalog", ImageFormatGIF.Not(), "ImageFormat (0111): png, jpeg, svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.set.String(); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperations(t *testing.T) {
	t.Parallel()

	// given
	web := ImageFormatPNG.And(ImageFormatJPEG).TurnOn(ImageFormatSVG)

	// then
	if web != ImageFormatWeb {
		t.Errorf("Got %v, want %v", web, ImageFormatWeb)
	}

	if !web.Has(ImageFormatPNG | ImageFormatSVG) {
		t.Errorf("%v should have png and svg", web)
	}

	if web.Has(ImageFormatPNG | ImageFormatGIF) {
		t.Errorf("%v should not have gif", web)
	}

	if got := web.Toggle(ImageFormatSVG | ImageFormatGIF); got != ImageFormatPNG|ImageFormatJPEG|ImageFormatGIF {
		t.Errorf("Got %v after toggle", got)
	}

	if got := web.TurnOff(ImageFormatJPEG); got != ImageFormatPNG|ImageFormatSVG {
		t.Errorf("Got %v after turning off jpeg", got)
	}

	if got := web.Not().Not(); got != web {
		t.Errorf("Double complement %v, want %v", got, web)
	}

	if got := optionset.Clamp(web.Not()); got != ImageFormatGIF {
		t.Errorf("Got clamped complement %v, want %v", got, ImageFormatGIF)
	}
}

func TestEqualAcrossTypes(t *testing.T) {
	t.Parallel()

	// Same raw value, different option set types.
	a, b := ImageFormatPNG, config.FeaturesMethods

	if a.Raw() != b.Raw() {
		t.Fatalf("Raw values differ: %d != %d", a.Raw(), b.Raw())
	}

	if optionset.Equal(a, b) {
		t.Errorf("%v and %v should not be equal", a, b)
	}

	if !optionset.Equal(a, ImageFormatPNG) {
		t.Errorf("%v should equal itself", a)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	got, err := ParseImageFormat("svg", "png")
	if err != nil {
		t.Fatalf("ParseImageFormat failed: %v", err)
	}

	if want := ImageFormatPNG | ImageFormatSVG; got != want {
		t.Errorf("Got %v, want %v", got, want)
	}

	_, err = ParseImageFormat("bmp")

	var uerr *optionset.UnknownOptionError
	if !errors.As(err, &uerr) || uerr.Option != "bmp" {
		t.Errorf("Got error %v, want unknown option bmp", err)
	}
}

func TestFlag(t *testing.T) {
	t.Parallel()

	formats := ImageFormatWeb

	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	fs.Var(optionset.NewValue(&formats), "formats", "accepted image formats")

	if err := fs.Parse([]string{"-formats", "-svg,+gif"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if want := ImageFormatPNG | ImageFormatJPEG | ImageFormatGIF; formats != want {
		t.Errorf("Got %v, want %v", formats, want)
	}
}

func Example() {
	formats := ImageFormatPNG | ImageFormatJPEG

	fmt.Println(formats)
	fmt.Println(formats.Has(ImageFormatWeb))
	fmt.Println(formats.TurnOn(ImageFormatGIF))
	// Output:
	// ImageFormat (0011): png, jpeg
	// false
	// ImageFormat (1011): png, jpeg, gif
}
