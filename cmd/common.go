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
	"fmt"

	"github.com/valpere/polyglot/internal/translator"
)

// buildService constructs the configured translation backend.
func buildService(cfg *Config) (translator.TranslationService, error) {
	svcCfg := translator.ServiceConfig{
		Endpoint:  cfg.Endpoint,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	}

	switch cfg.Service {
	case "google":
		return translator.NewGoogleService(svcCfg), nil
	case "mymemory":
		return translator.NewMyMemoryService(svcCfg, cfg.MyMemoryEmail), nil
	default:
		return nil, fmt.Errorf("unknown translation service: %s", cfg.Service)
	}
}
