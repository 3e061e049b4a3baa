package memory

import (
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/proplayer"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/sourceleague"
)

const (
	SourceLeagueIDLCK = "lck"
	SourceLeagueIDLEC = "lec"
	SourceLeagueIDLCS = "lcs"
	SourceLeagueIDLPL = "lpl"
	SourceLeagueIDMSI = "msi"
)

func SeedSourceLeagues() []sourceleague.League {
	return []sourceleague.League{
		{ID: SourceLeagueIDLCK, Name: "LCK", Slug: "lck", Region: "KR", FantasyAvailable: true},
		{ID: SourceLeagueIDLEC, Name: "LEC", Slug: "lec", Region: "EU", FantasyAvailable: true},
		{ID: SourceLeagueIDLCS, Name: "LCS", Slug: "lcs", Region: "NA", FantasyAvailable: true},
		{ID: SourceLeagueIDLPL, Name: "LPL", Slug: "lpl", Region: "CN", FantasyAvailable: false},
		{ID: SourceLeagueIDMSI, Name: "Mid-Season Invitational", Slug: "msi", Region: "INT", FantasyAvailable: true},
	}
}

func SeedProPlayers() []proplayer.Player {
	return []proplayer.Player{
		{ID: "t1-zeus", SummonerName: "Zeus", Role: fantasyteam.RoleTop, ProTeamID: "t1", ProTeamName: "T1"},
		{ID: "t1-oner", SummonerName: "Oner", Role: fantasyteam.RoleJungle, ProTeamID: "t1", ProTeamName: "T1"},
		{ID: "t1-faker", SummonerName: "Faker", Role: fantasyteam.RoleMid, ProTeamID: "t1", ProTeamName: "T1"},
		{ID: "t1-gumayusi", SummonerName: "Gumayusi", Role: fantasyteam.RoleADC, ProTeamID: "t1", ProTeamName: "T1"},
		{ID: "t1-keria", SummonerName: "Keria", Role: fantasyteam.RoleSupport, ProTeamID: "t1", ProTeamName: "T1"},
		{ID: "gen-kiin", SummonerName: "Kiin", Role: fantasyteam.RoleTop, ProTeamID: "gen", ProTeamName: "Gen.G"},
		{ID: "gen-canyon", SummonerName: "Canyon", Role: fantasyteam.RoleJungle, ProTeamID: "gen", ProTeamName: "Gen.G"},
		{ID: "gen-chovy", SummonerName: "Chovy", Role: fantasyteam.RoleMid, ProTeamID: "gen", ProTeamName: "Gen.G"},
		{ID: "gen-peyz", SummonerName: "Peyz", Role: fantasyteam.RoleADC, ProTeamID: "gen", ProTeamName: "Gen.G"},
		{ID: "gen-lehends", SummonerName: "Lehends", Role: fantasyteam.RoleSupport, ProTeamID: "gen", ProTeamName: "Gen.G"},
		{ID: "g2-brokenblade", SummonerName: "BrokenBlade", Role: fantasyteam.RoleTop, ProTeamID: "g2", ProTeamName: "G2 Esports"},
		{ID: "g2-yike", SummonerName: "Yike", Role: fantasyteam.RoleJungle, ProTeamID: "g2", ProTeamName: "G2 Esports"},
		{ID: "g2-caps", SummonerName: "Caps", Role: fantasyteam.RoleMid, ProTeamID: "g2", ProTeamName: "G2 Esports"},
		{ID: "g2-hans-sama", SummonerName: "Hans Sama", Role: fantasyteam.RoleADC, ProTeamID: "g2", ProTeamName: "G2 Esports"},
		{ID: "g2-mikyx", SummonerName: "Mikyx", Role: fantasyteam.RoleSupport, ProTeamID: "g2", ProTeamName: "G2 Esports"},
		{ID: "tl-impact", SummonerName: "Impact", Role: fantasyteam.RoleTop, ProTeamID: "tl", ProTeamName: "Team Liquid"},
		{ID: "tl-umti", SummonerName: "UmTi", Role: fantasyteam.RoleJungle, ProTeamID: "tl", ProTeamName: "Team Liquid"},
		{ID: "tl-apa", SummonerName: "APA", Role: fantasyteam.RoleMid, ProTeamID: "tl", ProTeamName: "Team Liquid"},
		{ID: "tl-yeon", SummonerName: "Yeon", Role: fantasyteam.RoleADC, ProTeamID: "tl", ProTeamName: "Team Liquid"},
		{ID: "tl-corejj", SummonerName: "CoreJJ", Role: fantasyteam.RoleSupport, ProTeamID: "tl", ProTeamName: "Team Liquid"},
		{ID: "blg-bin", SummonerName: "Bin", Role: fantasyteam.RoleTop, ProTeamID: "blg", ProTeamName: "Bilibili Gaming"},
		{ID: "blg-xun", SummonerName: "Xun", Role: fantasyteam.RoleJungle, ProTeamID: "blg", ProTeamName: "Bilibili Gaming"},
		{ID: "blg-knight", SummonerName: "knight", Role: fantasyteam.RoleMid, ProTeamID: "blg", ProTeamName: "Bilibili Gaming"},
		{ID: "blg-elk", SummonerName: "Elk", Role: fantasyteam.RoleADC, ProTeamID: "blg", ProTeamName: "Bilibili Gaming"},
		{ID: "blg-on", SummonerName: "ON", Role: fantasyteam.RoleSupport, ProTeamID: "blg", ProTeamName: "Bilibili Gaming"},
	}
}

// SeedProPlayerRosters maps players to their domestic league; T1, G2 and BLG also play MSI.
func SeedProPlayerRosters() []ProPlayerRoster {
	teamLeagues := map[string][]string{
		"t1":  {SourceLeagueIDLCK, SourceLeagueIDMSI},
		"gen": {SourceLeagueIDLCK},
		"g2":  {SourceLeagueIDLEC, SourceLeagueIDMSI},
		"tl":  {SourceLeagueIDLCS},
		"blg": {SourceLeagueIDLPL, SourceLeagueIDMSI},
	}

	players := SeedProPlayers()
	out := make([]ProPlayerRoster, 0, len(players)*2)
	for _, p := range players {
		for _, leagueID := range teamLeagues[p.ProTeamID] {
			out = append(out, ProPlayerRoster{SourceLeagueID: leagueID, PlayerID: p.ID})
		}
	}
	return out
}
