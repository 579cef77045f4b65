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

package source_test

import (
	"context"
	"testing"

	"github.com/deep-rent/wireup/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `
@Injectable()
export class UserRepositoryImpl implements UserRepository {
  constructor(@Inject() private readonly logger: Logger, cache?: Cache<string>) {}
}

@Injectable()
export class CachingUserRepository extends BaseRepository<User> {
  constructor(private readonly inner: UserRepository) {}
}
`

func TestPool_ParseFile_ExtractsClasses(t *testing.T) {
	t.Parallel()

	pool := source.NewPool(1)
	defer pool.Close()

	classes, err := pool.ParseFile(context.Background(), "src/UserRepositoryImpl.ts", []byte(sampleSource))
	require.NoError(t, err)
	require.Len(t, classes, 2)

	impl := classes[0]
	assert.Equal(t, "UserRepositoryImpl", impl.Name)
	assert.True(t, impl.HasDecorator("Injectable"))
	require.Len(t, impl.Implements, 1)
	assert.Equal(t, "UserRepository", impl.Implements[0].Name)
	require.Len(t, impl.ConstructorParams, 2)
	assert.Equal(t, "logger", impl.ConstructorParams[0].Name)
	assert.Equal(t, "Logger", impl.ConstructorParams[0].TypeSpelling)
	_, hasInject := impl.ConstructorParams[0].Decorator("Inject")
	assert.True(t, hasInject)
	assert.True(t, impl.ConstructorParams[1].Optional)

	caching := classes[1]
	assert.Equal(t, "CachingUserRepository", caching.Name)
	require.NotNil(t, caching.Extends)
	assert.Equal(t, "BaseRepository", caching.Extends.Name)
	assert.Equal(t, "User", caching.Extends.TypeArgs)
	assert.Equal(t, "BaseRepository<User>", caching.Extends.Spelling())
}

const configurationSource = `
@Configuration()
export class AppConfiguration {
  @Bean()
  createHttpClient(@Inject() baseUrl: string): HttpClient {
    return new HttpClient(baseUrl);
  }
}
`

func TestPool_ParseFile_ExtractsBeanMethods(t *testing.T) {
	t.Parallel()

	pool := source.NewPool(1)
	defer pool.Close()

	classes, err := pool.ParseFile(context.Background(), "src/AppConfiguration.ts", []byte(configurationSource))
	require.NoError(t, err)
	require.Len(t, classes, 1)

	cfg := classes[0]
	assert.True(t, cfg.HasDecorator("Configuration"))
	require.Len(t, cfg.Methods, 1)

	method := cfg.Methods[0]
	assert.Equal(t, "createHttpClient", method.Name)
	assert.True(t, method.HasDecorator("Bean"))
	assert.Equal(t, "HttpClient", method.ReturnType)
	require.Len(t, method.Params, 1)
	assert.Equal(t, "baseUrl", method.Params[0].Name)
	assert.Equal(t, "string", method.Params[0].TypeSpelling)
}

func TestPool_ParseFile_NoClasses(t *testing.T) {
	t.Parallel()

	pool := source.NewPool(1)
	defer pool.Close()

	classes, err := pool.ParseFile(context.Background(), "src/empty.ts", []byte("export const x = 1;\n"))
	require.NoError(t, err)
	assert.Empty(t, classes)
}
