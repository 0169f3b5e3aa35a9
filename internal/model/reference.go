package model

import (
	"sort"
	"strconv"
)

// DefaultSheetsURL is the spreadsheet script endpoint used until one is configured.
const DefaultSheetsURL = "https://script.google.com/macros/s/AKfycbzB9TeqSUd41R3R9XMAOyDoUr5eB0_leW-wYc56Q29xUR3af7YCeinJ45I_CIN4DJDu/exec"

// CriticalThreshold is the balance at or below which a material is flagged.
const CriticalThreshold = 6

// MaxBalance bounds every stored balance and movement quantity. Sheet
// values above it are treated as unparsable.
const MaxBalance = 1_000_000_000

var rawVehicles = []string{
	"1645", "1700", "1711", "1769", "1770", "1811", "1859",
	"1847", "1845", "4001", "4006", "4013", "4014",
	"4015", "4016", "4020", "4025",
}

// Vehicles is the de-duplicated fleet list sorted numerically.
var Vehicles = uniqueSortedVehicles(rawVehicles)

func uniqueSortedVehicles(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i])
		b, _ := strconv.Atoi(out[j])
		return a < b
	})
	return out
}

// IsKnownVehicle reports whether vtr is part of the fleet.
func IsKnownVehicle(vtr string) bool {
	for _, v := range Vehicles {
		if v == vtr {
			return true
		}
	}
	return false
}

// InitialInventory seeds an empty local cache.
var InitialInventory = []InventoryItem{
	{ID: "90394", Name: "ABRACADEIRA CINTA AUTOTRAV POLIAM 230X9X3,0MM PRT", BalanceItabaiana: 50, BalanceDores: 0},
	{ID: "90395", Name: "ABRACADEIRA CINTA AUTOTRAV POLIAM 390X9X3,0MM PRT", BalanceItabaiana: 50, BalanceDores: 0},
	{ID: "92453", Name: "ALÇA ESTRIBO COBRE COM PERFURANTE 185MM (SPACE)", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "92452", Name: "ALÇA ESTRIBO COBRE COM PERFURANTE 95MM (SPACE)", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90459", Name: "ALCA ESTRIBO NORM COMPR COBRE 100A 70X110MM 6,5MM (NORMAL)", BalanceItabaiana: 15, BalanceDores: 0},
	{ID: "90316", Name: "ALCA PREF DISTR ACO-ALUM 13,13-14,67MM 875MM VRM (CABO 4/0 AÇO)", BalanceItabaiana: 10, BalanceDores: 0},
	{ID: "90317", Name: "ALCA PREF DISTR ACO-ALUM 16,61-17,69MM 978MM VRD (CABO 336 AÇO)", BalanceItabaiana: 10, BalanceDores: 0},
	{ID: "90315", Name: "ALCA PREF DISTR ACO-ALUM 9,27-10,40MM 660MM AMR (CABO 1/0 AÇO)", BalanceItabaiana: 10, BalanceDores: 0},
	{ID: "90711", Name: "ALCA PREF DISTR LIGA-ALUM 13,10-14,65MM 865MM VRM (CABO 4/0 ALUMINIO)", BalanceItabaiana: 10, BalanceDores: 0},
	{ID: "90712", Name: "ALCA PREF DISTR LIGA-ALUM 16,20-18,15MM 430MM VRD (CABO 336 ALUMINIO)", BalanceItabaiana: 10, BalanceDores: 0},
	{ID: "90706", Name: "ALCA PREF DISTR LIGA-ALUM 5,70-6,45MM430MM LRJ (CABO 4 ALUMINIO)", BalanceItabaiana: 10, BalanceDores: 0},
	{ID: "90707", Name: "ALCA PREF DISTR LIGA-ALUM 7,30-8,20MM 610MM VRM (CABO 2 ALUMINIO)", BalanceItabaiana: 10, BalanceDores: 0},
	{ID: "90708", Name: "ALCA PREF DISTR LIGA-ALUM 9,15-10,25MM 670MM AMR (CABO 1/0 ALUMINIO)", BalanceItabaiana: 10, BalanceDores: 0},
	{ID: "90313", Name: "ALCA PREF SERV ACO-ALUM 5,81-6,53MM 445MM LRJ (CABO 4 AÇO)", BalanceItabaiana: 25, BalanceDores: 0},
	{ID: "90314", Name: "ALCA PREF SERV ACO-ALUM 7,36-8,27MM 625MM VRM (CABO 2 AÇO)", BalanceItabaiana: 25, BalanceDores: 0},
	{ID: "90324", Name: "ALCA PREF SERV CONC ACO-ALUM 9,80-10,50MM 355MM AMR", BalanceItabaiana: 25, BalanceDores: 0},
	{ID: "90537", Name: "ANEL AMAR ELASTOMERICO P/ESPACADOR 45X90X140MM CNZ", BalanceItabaiana: 30, BalanceDores: 0},
	{ID: "90538", Name: "ANEL AMAR ELASTOMERICO P/ISOLADOR 15,0KV 45X110X160MM VRM", BalanceItabaiana: 30, BalanceDores: 0},
	{ID: "90393", Name: "ARMACAO SECUNDARIA ACO GALV 1 ESTRIBO 110X50X5,0MM 125X16MM", BalanceItabaiana: 15, BalanceDores: 0},
	{ID: "90389", Name: "ARRUELA QUADRADA ACO GALV 38X18X3MM", BalanceItabaiana: 100, BalanceDores: 0},
	{ID: "90542", Name: "BRACO COMP TIPO C 15KV ACO-GALV 580X365X362MM", BalanceItabaiana: 5, BalanceDores: 0},
	{ID: "90536", Name: "BRACO COMP TIPO J 15/36,2KV ACO-GALV 1650X550MM", BalanceItabaiana: 5, BalanceDores: 0},
	{ID: "90836", Name: "CABO ACO-COBRE ATERRAMENTO, AC", BalanceItabaiana: 100, BalanceDores: 0},
	{ID: "90296", Name: "CABO ALUM CONCENTR 0,6/1KV XLPE 1F 1X10MM2+10MM2", BalanceItabaiana: 200, BalanceDores: 0},
	{ID: "90284", Name: "CABO ALUM MULTIPLEX 0,6/1,0KV XLPE 2F 2X1X35MM2+35MM2", BalanceItabaiana: 200, BalanceDores: 0},
	{ID: "90285", Name: "CABO ALUM MULTIPLEX 0,6/1,0KV XLPE 3F 3X1X10MM2+10MM2", BalanceItabaiana: 200, BalanceDores: 0},
	{ID: "90288", Name: "CABO ALUM MULTIPLEX 0,6/1,0KV XLPE 3F 3X1X35MM2+35MM2", BalanceItabaiana: 200, BalanceDores: 0},
	{ID: "90289", Name: "CABO ALUM MULTIPLEX 0,6/1,0KV XLPE 3F 3X1X70MM2+70MM2", BalanceItabaiana: 200, BalanceDores: 0},
	{ID: "90563", Name: "CABO ALUM MULTIPLEX NI 0,6/1,0KV XLPE 3F 3X1X35MM2+35MM2", BalanceItabaiana: 200, BalanceDores: 0},
	{ID: "90259", Name: "CABO ALUM NU 1F CA/AAC 1/0AWG POPPY", BalanceItabaiana: 500, BalanceDores: 0},
	{ID: "90258", Name: "CABO ALUM NU 1F CA/AAC 2AWG IRIS", BalanceItabaiana: 500, BalanceDores: 0},
	{ID: "90261", Name: "CABO ALUM NU 1F CA/AAC 336,4MCM TULIP", BalanceItabaiana: 500, BalanceDores: 0},
	{ID: "90260", Name: "CABO ALUM NU 1F CA/AAC 4/0AWG OXLIP", BalanceItabaiana: 500, BalanceDores: 0},
	{ID: "90263", Name: "CABO ALUM NU CAA/ASCR 1F 1/0AWG RAVEN", BalanceItabaiana: 500, BalanceDores: 0},
	{ID: "90262", Name: "CABO ALUM NU CAA/ASCR 1F 2AWG SPARROW", BalanceItabaiana: 500, BalanceDores: 0},
	{ID: "90265", Name: "CABO ALUM NU CAA/ASCR 1F 336,4MCM LINNET", BalanceItabaiana: 500, BalanceDores: 0},
	{ID: "90560", Name: "CABO ALUM NU CAA/ASCR 1F 4AWG SWAN", BalanceItabaiana: 500, BalanceDores: 0},
	{ID: "90625", Name: "CABO ALUM PROT DUP XLPE/HDPE 1F 15,0KV 120MM2 BLOQ CNZ", BalanceItabaiana: 300, BalanceDores: 0},
	{ID: "90267", Name: "CABO ALUM PROT SPL XLPE 1F 15,0KV 120MM2 BLOQ CNZ", BalanceItabaiana: 300, BalanceDores: 0},
	{ID: "90268", Name: "CABO ALUM PROT SPL XLPE 1F 15,0KV 185MM2 BLOQ CNZ (MAIS USADO)", BalanceItabaiana: 500, BalanceDores: 0},
	{ID: "90266", Name: "CABO ALUM PROT SPL XLPE 1F 15,0KV 50MM2 BLOQ CNZ", BalanceItabaiana: 300, BalanceDores: 0},
	{ID: "90293", Name: "CABO ALUM PROT SPL XLPE 1F 36,2KV 185MM2 BLOQ CNZ", BalanceItabaiana: 100, BalanceDores: 0},
	{ID: "91095", Name: "CABO COBR POTENC SUBT 0,6/1,0KV PVC/XLPE 1X6MM2 1F PRT", BalanceItabaiana: 100, BalanceDores: 0},
	{ID: "92170", Name: "CABO COBR PROT SPL XLPE 1F 15,0KV 35MM2 BLOQ CNZ (MAIS USADO)", BalanceItabaiana: 200, BalanceDores: 0},
	{ID: "90945", Name: "CABO COBRE NU RDA 70MM2 1F CL2A", BalanceItabaiana: 100, BalanceDores: 0},
	{ID: "612481", Name: "CABO FLEXIVEL EPROTENAX 2X2,5 (PP)", BalanceItabaiana: 100, BalanceDores: 0},
	{ID: "90969", Name: "CAPA PROT BORR SILIC PARA-RAIOS MT 15/36,2KV 70X97MM", BalanceItabaiana: 40, BalanceDores: 0},
	{ID: "90586", Name: "CAPA PROTETORA TRANSF MT PEAD 15/36,2KV 135X110MM", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90486", Name: "CARTUCHO FERRAM CONECTOR CUNHA AMARELO 24,30MM", BalanceItabaiana: 50, BalanceDores: 0},
	{ID: "90487", Name: "CARTUCHO FERRAM CONECTOR CUNHA AZUL 14,80MM", BalanceItabaiana: 50, BalanceDores: 0},
	{ID: "90488", Name: "CARTUCHO FERRAM CONECTOR CUNHA VERMELHO 14,80MM", BalanceItabaiana: 50, BalanceDores: 0},
	{ID: "37989", Name: "CHASSI PARA IDENTIFICACAO", BalanceItabaiana: 100, BalanceDores: 0},
	{ID: "90547", Name: "CHAVE FUS DIST PRC BASE C 15,0KV 315A 1F MAN SEC", BalanceItabaiana: 15, BalanceDores: 0},
	{ID: "90561", Name: "CHAVE FUS DIST PRC BASE C 24,2KV 315A 1F MAN SEC", BalanceItabaiana: 10, BalanceDores: 0},
	{ID: "90549", Name: "CHAVE FUS RELIG DIST PRC BASE C 15,0KV 315A 1F MAN SEC 3INT", BalanceItabaiana: 5, BalanceDores: 0},
	{ID: "90551", Name: "CHAVE SECC FACA PORC EXT 11,4-13,8-15KV 400A 1F MAN SECO CEN", BalanceItabaiana: 8, BalanceDores: 0},
	{ID: "90554", Name: "CHAVE SECC FACA PORC EXT 11,4-13,8-15KV 630A 1F MAN SECO CEN", BalanceItabaiana: 5, BalanceDores: 0},
	{ID: "614644", Name: "CINTA P/ POSTE CIRCULAR 415 MM", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "616179", Name: "CINTA P/ POSTE CIRCULAR 430MM", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "616181", Name: "CINTA P/ POSTE CIRCULAR 480MM", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "618663", Name: "CINTA P/ POSTE CIRCULAR 520MM", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "614647", Name: "CINTA P/ POSTE CIRCULAR 530 MM", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "614649", Name: "CINTA P/ POSTE CIRCULAR 570 MM", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90213", Name: "CINTA POSTE CIRCULAR ACO GALV 130MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90215", Name: "CINTA POSTE CIRCULAR ACO GALV 160MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90216", Name: "CINTA POSTE CIRCULAR ACO GALV 170MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90217", Name: "CINTA POSTE CIRCULAR ACO GALV 180MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90218", Name: "CINTA POSTE CIRCULAR ACO GALV 190MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90219", Name: "CINTA POSTE CIRCULAR ACO GALV 200MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90221", Name: "CINTA POSTE CIRCULAR ACO GALV 230MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90223", Name: "CINTA POSTE CIRCULAR ACO GALV 250MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90224", Name: "CINTA POSTE CIRCULAR ACO GALV 270MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90225", Name: "CINTA POSTE CIRCULAR ACO GALV 280MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90226", Name: "CINTA POSTE CIRCULAR ACO GALV 300MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90228", Name: "CINTA POSTE CIRCULAR ACO GALV 320MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90234", Name: "CINTA POSTE CIRCULAR ACO GALV 330MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90235", Name: "CINTA POSTE CIRCULAR ACO GALV 340MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90236", Name: "CINTA POSTE CIRCULAR ACO GALV 350MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90237", Name: "CINTA POSTE CIRCULAR ACO GALV 360MM 6MM 5000DAN", BalanceItabaiana: 20, BalanceDores: 0},
	{ID: "90458", Name: "COBERTURA PROT GLV PEAD 325X220MM 36,2KV CNZ", BalanceItabaiana: 10, BalanceDores: 0},
	{ID: "90471", Name: "CONEC CUNHA RML COBR TP I 3,17-8,12/3,17-7,42MM CZ", BalanceItabaiana: 100, BalanceDores: 0},
	{ID: "90472", Name: "CONEC CUNHA RML COBR TP II 3,17-8,12/3,17-5,21MM VD", BalanceItabaiana: 100, BalanceDores: 0},
}
