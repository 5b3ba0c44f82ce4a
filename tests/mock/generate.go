// Package mock holds the gomock doubles used by unit tests.
package mock

//go:generate mockgen -destination=repository/queries.go -package=repositorymock sauna-reservation/internal/infra/repository BoatLockQueries,ReservationWriteQueries,SaunaLockQueries,SharedReservationWriteQueries
//go:generate mockgen -destination=readstore/queries.go -package=readstoremock sauna-reservation/internal/infra/readstore CommitmentReadQueries,ReservationReadQueries,SaunaReadQueries,SharedReservationReadQueries
//go:generate mockgen -destination=shared/uow.go -package=sharedmock sauna-reservation/internal/usecase/shared UnitOfWork,Tx,CommandReads,CommitmentReader,ReservationRepository,SharedReservationRepository,BoatRepository,SaunaRepository
//go:generate mockgen -destination=queries/stores.go -package=queriesmock sauna-reservation/internal/usecase/queries SaunaReadStore,ReservationReadStore,SharedReservationReadStore
//go:generate mockgen -destination=queries/queries.go -package=queriesmock sauna-reservation/internal/usecase/queries AvailabilityQueries,ReservationQueries,ClubSaunaQueries,SharedReservationQueries
//go:generate mockgen -destination=commands/commands.go -package=commandsmock sauna-reservation/internal/usecase/commands ReservationCommands,SharedReservationCommands,ClubSaunaCommands
