/*
 * Copyright © 2025, The qrgen Authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command qrdemo encodes its argument into a QR, Micro QR or rMQR symbol,
// prints it to the terminal, and optionally opens an SVG rendering in the
// default browser.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"

	"github.com/qrfoundry/qrgen"
)

func main() {
	variant := flag.String("variant", "qr", "symbol variant: qr, micro or rmqr")
	level := flag.String("level", "M", "error correction level: L, M, Q or H")
	open := flag.Bool("open", false, "render to SVG and open in the default browser")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: qrdemo [-variant qr|micro|rmqr] [-level L|M|Q|H] [-open] <text>")
		os.Exit(2)
	}
	data := []byte(flag.Arg(0))

	levels := map[string]qrgen.EcLevel{
		"L": qrgen.LevelL, "M": qrgen.LevelM, "Q": qrgen.LevelQ, "H": qrgen.LevelH,
	}
	ec, ok := levels[*level]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown error correction level %q\n", *level)
		os.Exit(2)
	}

	var (
		code *qrgen.QrCode
		err  error
	)
	switch *variant {
	case "qr":
		code, err = qrgen.Encode(data, ec)
	case "micro":
		code, err = qrgen.EncodeMicro(data, ec)
	case "rmqr":
		code, err = qrgen.EncodeRectMicro(data, ec, qrgen.StrategyArea)
	default:
		fmt.Fprintf(os.Stderr, "unknown variant %q\n", *variant)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "encoding failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(code)
	fmt.Printf("%v, %dx%d modules, up to %d module errors tolerated\n",
		code.Version(), code.Width(), code.Height(), code.MaxAllowedErrors())

	if !*open {
		return
	}
	svg, err := code.ToSVGString(code.QuietZone(), true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rendering failed: %v\n", err)
		os.Exit(1)
	}
	path := filepath.Join(os.TempDir(), "qrdemo.svg")
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s failed: %v\n", path, err)
		os.Exit(1)
	}
	if err := browser.OpenFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "opening browser failed: %v\n", err)
		os.Exit(1)
	}
}
