// Copyright (c) 2025-present deep.rent GmbH (https://deep.rent)
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

package configgen

import (
	"strings"

	"github.com/deep-rent/wireup/key"
	"github.com/deep-rent/wireup/model"
	"github.com/deep-rent/wireup/source"
)

// bean is one provider-method discovery result: a @Bean-decorated method on
// a @Configuration class.
type bean struct {
	key   string
	entry model.FactoryEntry
}

// discoverBeans walks every @Configuration class's @Bean-decorated
// methods, independent of the service-marker gate classify.Classifier
// applies. A configuration class is never itself a service.
func discoverBeans(classes []source.Class) []bean {
	var out []bean
	for _, cls := range classes {
		if !cls.HasDecorator("Configuration") {
			continue
		}
		for _, m := range cls.Methods {
			if !m.HasDecorator("Bean") {
				continue
			}
			out = append(out, buildBean(cls, m))
		}
	}
	return out
}

func buildBean(cls source.Class, m source.Method) bean {
	sanitizedKey := key.Sanitize(m.ReturnType)

	var qualifier string
	if d, ok := m.Decorator("Bean"); ok {
		qualifier = unquoteArg(d.Args)
	}
	entryKey := sanitizedKey
	if qualifier != "" {
		entryKey = sanitizedKey + ":" + qualifier
	}

	var deps []string
	for _, p := range m.Params {
		dep := key.Sanitize(p.TypeSpelling)
		if q, ok := p.Decorator("Qualifier"); ok {
			dep = dep + ":" + unquoteArg(q.Args)
		}
		deps = append(deps, dep)
	}

	return bean{
		key: entryKey,
		entry: model.FactoryEntry{
			FactoryDescriptor:   cls.Name + "#" + m.Name,
			Scope:               model.ScopeSingleton,
			Dependencies:        deps,
			InterfaceName:       m.ReturnType,
			ImplementationClass: m.ReturnType,
			IsAutoResolved:      false,
			Qualifier:           qualifier,
			IsBean:              true,
			BeanMethodName:      m.Name,
			ConfigurationClass:  cls.Name,
		},
	}
}

// unquoteArg strips a single pair of surrounding quotes from a decorator's
// raw argument text, mirroring classify.Metadata's own handling of
// @Qualifier/@Profile arguments.
func unquoteArg(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'' || first == '`') && last == first {
			return s[1 : len(s)-1]
		}
	}
	return s
}
