package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/league --output domain/league --outpkg leaguemock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name DirectorySource --dir ../domain/player --output domain/player --outpkg playermock --filename directory_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name RankingSource --dir ../domain/player --output domain/player --outpkg playermock --filename ranking_source_mock.go
