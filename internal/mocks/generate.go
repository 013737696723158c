package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/clubalias --output domain/clubalias --outpkg clubaliasmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/clubinfo --output domain/clubinfo --outpkg clubinfomock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/clubstats --output domain/clubstats --outpkg clubstatsmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/playerstats --output domain/playerstats --outpkg playerstatsmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SportsProvider --dir ../usecase --output usecase --outpkg usecasemock --filename sports_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name KeyLocker --dir ../usecase --output usecase --outpkg usecasemock --filename key_locker_mock.go
