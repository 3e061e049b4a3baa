package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/fantasyleague --output domain/fantasyleague --outpkg fantasyleaguemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MembershipRepository --dir ../domain/fantasyleague --output domain/fantasyleague --outpkg fantasyleaguemock --filename membership_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name DraftOrderRepository --dir ../domain/fantasyleague --output domain/fantasyleague --outpkg fantasyleaguemock --filename draft_order_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/fantasyteam --output domain/fantasyteam --outpkg fantasyteammock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/user --output domain/user --outpkg usermock --filename repository_mock.go
