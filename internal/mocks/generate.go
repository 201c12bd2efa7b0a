package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerRepository --dir ../repository --output repository --outpkg repositorymock --filename player_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TeamRepository --dir ../repository --output repository --outpkg repositorymock --filename team_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name APIKeyRepository --dir ../repository --output repository --outpkg repositorymock --filename api_key_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SeasonRepository --dir ../repository --output repository --outpkg repositorymock --filename season_repository_mock.go
