/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"

	"github.com/valpere/polyglot/internal/args"
	"github.com/valpere/polyglot/internal/translator"
)

const (
	exitFailure        = 1
	exitArgument       = 2
	exitTransport      = 3
	exitResponseFormat = 4
)

func exitCode(err error) int {
	var argErr *args.ArgumentError
	var transportErr *translator.TransportError
	var formatErr *translator.ResponseFormatError

	switch {
	case errors.As(err, &argErr):
		return exitArgument
	case errors.As(err, &transportErr):
		return exitTransport
	case errors.As(err, &formatErr):
		return exitResponseFormat
	default:
		return exitFailure
	}
}

func errorKind(err error) string {
	switch exitCode(err) {
	case exitArgument:
		return "argument"
	case exitTransport:
		return "transport"
	case exitResponseFormat:
		return "response_format"
	default:
		return "other"
	}
}
