package params

import "math"

// DefaultTemplates is the seed table behind Defaults. Masses are in GeV,
// life times in seconds.
var DefaultTemplates = []Template{
	{"hbar", 6.58211913e-25, 6.58211928e-25, 6.58211943e-25},

	// Wilson coefficients C1 - C6 at mu = 4.2 GeV to NNLL accuracy as calculated in the SM.
	// For the calculations, cf. [BMU1999].
	{"c1", -0.29063621, -0.29063621, -0.29063621},
	{"c2", 1.01029623, 1.01029623, 1.01029623},
	{"c3", -0.00616220, -0.00616220, -0.00616220},
	{"c4", -0.08730376, -0.08730376, -0.08730376},
	{"c5", 0.00042854, 0.00042854, 0.00042854},
	{"c6", 0.00115807, 0.00115807, 0.00115807},
	{"Abs{c7}", 0.0, 0.33726473, 1.0},
	{"Arg{c7}", 0.0, math.Pi, 2.0 * math.Pi},
	{"Re{c7}", -1.0, -0.33726473, 1.0},
	{"Im{c7}", -1.0, 0.0, 1.0},
	{"c8", -0.18288898, -0.18288898, -0.18288898},
	{"Abs{c9}", 0.0, 4.27342842, 15.0},
	{"Arg{c9}", 0.0, 0.0, 2.0 * math.Pi},
	{"Re{c9}", -15.0, 4.27342842, 15.0},
	{"Im{c9}", -15.0, 0.0, 15.0},
	{"Abs{c10}", 0.0, 4.16611761, 15.0},
	{"Arg{c10}", 0.0, math.Pi, 2.0 * math.Pi},
	{"Re{c10}", -15.0, -4.16611761, 15.0},
	{"Im{c10}", -15.0, 0.0, 15.0},
	// Primed Wilson coefficients are negligible in the SM
	{"Abs{c7'}", 0.0, 0.0, 1.0},
	{"Arg{c7'}", 0.0, 0.0, 2.0 * math.Pi},
	{"Re{c7'}", -1.0, 0.0, 1.0},
	{"Im{c7'}", -1.0, 0.0, 1.0},
	{"c8'", 0.0, 0.0, 0.0},
	{"Abs{c9'}", 0.0, 0.0, 15.0},
	{"Arg{c9'}", 0.0, 0.0, 2.0 * math.Pi},
	{"Re{c9'}", -15.0, 0.0, 15.0},
	{"Im{c9'}", -15.0, 0.0, 15.0},
	{"Abs{c10'}", 0.0, 0.0, 15.0},
	{"Arg{c10'}", 0.0, 0.0, 2.0 * math.Pi},
	{"Re{c10'}", -15.0, 0.0, 15.0},
	{"Im{c10'}", -15.0, 0.0, 15.0},
	// Factorization scale
	{"mu", 2.4, 4.2, 9.6},
	// GSW Parameter
	{"GSW::sin^2(theta)", 0.23104, 0.23116, 0.23128},
	// Wolfenstein parameters of CKM, cf. [UTFIT2013]
	{"CKM::A", 0.814, 0.827, 0.840},
	{"CKM::lambda", 0.22470, 0.22535, 0.22600},
	{"CKM::rhobar", 0.111, 0.132, 0.153},
	{"CKM::etabar", 0.336, 0.350, 0.364},
	// QED inputs
	{"QED::alpha_e(m_b)", 1.0 / 133.0, 1.0 / 133.0, 1.0 / 128.0},
	// QCD inputs
	{"QCD::alpha_s(MZ)", 0.1191, 0.1184, 0.1177},
	{"QCD::mu_t", 170.0, 170.0, 170.0},
	{"QCD::mu_b", 4.2, 4.2, 4.2},
	{"QCD::mu_c", 1.0, 1.0, 1.0},
	{"QCD::Lambda", 0.5, 0.5, 0.5},
	// G_Fermi
	{"G_Fermi", 1.1663781e-5, 1.1663787e-5, 1.1663793e-5},
	// Masses in GeV
	// Lepton masses
	{"mass::e", 5.10999e-4, 5.10999e-4, 5.10999e-4},
	{"mass::mu", 1.05658e-1, 1.05658e-1, 1.05658e-1},
	{"mass::tau", 1.77666, 1.77682, 1.77698},
	// Quark masses
	{"mass::s(2GeV)", 0.090, 0.095, 0.010}, // min > max as published; not validated
	{"mass::c", 1.250, 1.275, 1.300},
	{"mass::b(MSbar)", 4.15, 4.18, 4.21},
	{"mass::t(pole)", 172.5, 173.5, 174.5},
	// K meson masses
	{"mass::K0", 0.497590, 0.497614, 0.497638},
	{"mass::K^*0", 0.89572, 0.89594, 0.89616},
	// B meson masses
	{"mass::B_d", 5.27941, 5.27958, 5.27975},
	{"mass::B_u", 5.27908, 5.27925, 5.27942},
	{"mass::B_s", 5.36653, 5.36677, 5.36701},
	// Gauge boson masses
	{"mass::W", 80.370, 80.385, 80.400},
	{"mass::Z", 91.1855, 91.1876, 91.1897},
	// Decay constants
	{"decay-constant::B_d", 0.1859, 0.1906, 0.1953},
	{"decay-constant::B_u", 0.1859, 0.1906, 0.1953},
	{"decay-constant::B_s", 0.2226, 0.2276, 0.2326},
	{"decay-constant::K_d", 0.155, 0.1561, 0.1572},
	{"decay-constant::K_u", 0.155, 0.1561, 0.1572},
	// b->s matching parameters
	{"b->s::mu_0c", 80.0, 80.0, 80.0},
	{"b->s::mu_0t", 120.0, 120.0, 120.0},
	// Mean life times
	{"life_time::B_d", 1.512e-12, 1.519e-12, 1.526e-12},
	{"life_time::B_u", 1.633e-12, 1.641e-12, 1.649e-12},
	{"life_time::B_s", 1.482e-12, 1.497e-12, 1.512e-12},
	// Decay width differences in neutral meson systems
	{"life_time::Delta_B_d", 0.0, 0.0, 0.0},
	{"life_time::Delta_B_s", 0.092, 0.104, 0.116},
	// Form factor uncertainties
	{"formfactors::xi_perp_uncertainty", 0.89, 1.0, 1.11},
	{"formfactors::xi_par_uncertainty", 0.86, 1.0, 1.14},
	// form factor parameters for B->K^* according to [BZ2004] (approximate)
	{"B->K^*::a0_uncertainty@BZ2004", 0.85, 1.0, 1.15},
	{"B->K^*::a1_uncertainty@BZ2004", 0.85, 1.0, 1.15},
	{"B->K^*::a2_uncertainty@BZ2004", 0.85, 1.0, 1.15},
	{"B->K^*::v_uncertainty@BZ2004", 0.85, 1.0, 1.15},
	// form factor parameters for B->K^* according to [KMPW2010], Table 4, p. 31
	{"B->K^*::F^V(0)@KMPW2010", 0.24, 0.36, 0.59},
	{"B->K^*::F^A0(0)@KMPW2010", 0.22, 0.29, 0.39},
	{"B->K^*::F^A1(0)@KMPW2010", 0.15, 0.25, 0.41},
	{"B->K^*::F^A2(0)@KMPW2010", 0.13, 0.23, 0.42},
	{"B->K^*::b^V_1@KMPW2010", -5.2, -4.8, -4.0},
	{"B->K^*::b^A0_1@KMPW2010", -21.2, -18.2, -16.9},
	{"B->K^*::b^A1_1@KMPW2010", -0.46, 0.34, 1.2},
	{"B->K^*::b^A2_1@KMPW2010", -2.2, -0.85, 2.03},
	// form factor parameters for B->K according to [BZ2004v2] (approximate)
	{"B->K::fp_uncertainty@BZ2004v2", 0.85, 1.0, 1.15},
	{"B->K::f0_uncertainty@BZ2004v2", 0.85, 1.0, 1.15},
	{"B->K::ft_uncertainty@BZ2004v2", 0.85, 1.0, 1.15},
	// form factor parameters for B->K according to [KMPW2010], Table 4, p. 31
	{"B->K::F^p(0)@KMPW2010", 0.32, 0.34, 0.39},
	{"B->K::F^0(0)@KMPW2010", 0.32, 0.34, 0.39},
	{"B->K::F^t(0)@KMPW2010", 0.36, 0.39, 0.44},
	{"B->K::b^p_1@KMPW2010", -3.7, -2.1, -1.2},
	{"B->K::b^0_1@KMPW2010", -5.2, -4.3, -3.5},
	{"B->K::b^t_1@KMPW2010", -4.2, -2.2, -1.2},
	// form factor parameters for B->K simple series expansion (SSE) based on
	// LCSR according to [BFW2010], table 6, p. 22, corrected values from Aoife Bharucha
	{"B->K::alpha^V0_0@BFW2010", 0.48, 0.48, 0.48},
	{"B->K::alpha^V0_1@BFW2010", -1.05, -1.05, -1.05},
	{"B->K::alpha^Vt_0np@BFW2010", 0.52, 0.52, 0.52},
	{"B->K::alpha^Vt_1np@BFW2010", -1.4, -1.4, -1.4},
	{"B->K::alpha^T0_0@BFW2010", 0.48, 0.48, 0.48},
	{"B->K::alpha^T0_1@BFW2010", -1.09, -1.09, -1.09},
	// B LCDA parameters
	{"lambda_B_p", 0.370, 0.485, 0.600},
	// B->K LCDA Parameter
	{"B->K::a_1@1GeV", 0.03, 0.06, 0.09},
	{"B->K::a_2@1GeV", 0.10, 0.25, 0.4},
	{"B->K::a_4@1GeV", -0.115, -0.015, 0.085},
	{"B->K::a_1@2.2GeV", 0.024, 0.048, 0.071},
	{"B->K::a_2@2.2GeV", 0.070, 0.174, 0.278},
	{"B->K::a_4@2.2GeV", -0.0679, -0.0089, 0.0502},
	// B->K^*, K^* LCDA parameters
	{"B->K^*::a_1_par", 0.03, 0.1, 0.17},
	{"B->K^*::a_2_par", 0.0, 0.1, 0.2},
	{"B->K^*::a_1_perp", 0.03, 0.1, 0.17},
	{"B->K^*::a_2_perp", 0.0, 0.1, 0.2},
	{"B->K^*::f_Kstar_par", 0.212, 0.217, 0.222},
	{"B->K^*::f_Kstar_perp@2GeV", 0.168, 0.173, 0.178},
	// B->K^*ll uncertainties from subleading terms for Large Recoil
	{"B->K^*ll::sl_uncertainty@LargeRecoil", 0.95, 1.0, 1.05},
	{"B->K^*ll::A_0^L_uncertainty@LargeRecoil", 0.95, 1.0, 1.05},
	{"B->K^*ll::A_0^R_uncertainty@LargeRecoil", 0.95, 1.0, 1.05},
	{"B->K^*ll::A_par^L_uncertainty@LargeRecoil", 0.95, 1.0, 1.05},
	{"B->K^*ll::A_par^R_uncertainty@LargeRecoil", 0.95, 1.0, 1.05},
	{"B->K^*ll::A_perp^L_uncertainty@LargeRecoil", 0.95, 1.0, 1.05},
	{"B->K^*ll::A_perp^R_uncertainty@LargeRecoil", 0.95, 1.0, 1.05},
	// B->Pll uncertainties at subleading order at Large Recoil
	{"B->Pll::Lambda_pseudo@LargeRecoil", -0.5, 0.0, 0.5},
	{"B->Pll::sl_phase_pseudo@LargeRecoil", -math.Pi / 2.0, 0.0, math.Pi / 2.0},
	// B->Pll uncertainties at subleading order at Low Recoil
	{"B->Pll::Lambda_pseudo@LowRecoil", -0.5, 0.0, 0.5},
	{"B->Pll::sl_phase_pseudo@LowRecoil", -math.Pi / 2.0, 0.0, math.Pi / 2.0},
	// B->Vll uncertainties at subleading order at Low Recoil
	{"B->Vll::Lambda@LowRecoil", -0.5, 0.0, 0.5},
	{"B->Vll::Lambda_0@LowRecoil", -0.5, 0.0, 0.5},
	{"B->Vll::Lambda_pa@LowRecoil", -0.5, 0.0, 0.5},
	{"B->Vll::Lambda_pp@LowRecoil", -0.5, 0.0, 0.5},
	{"B->Vll::sl_phase@LowRecoil", -math.Pi / 2.0, 0.0, math.Pi / 2.0},
	{"B->Vll::sl_phase_0@LowRecoil", -math.Pi / 2.0, 0.0, math.Pi / 2.0},
	{"B->Vll::sl_phase_pa@LowRecoil", -math.Pi / 2.0, 0.0, math.Pi / 2.0},
	{"B->Vll::sl_phase_pp@LowRecoil", -math.Pi / 2.0, 0.0, math.Pi / 2.0},
	// HQET parameters
	{"HQET::lambda_1", -0.20, -0.20, -0.20},
	{"HQET::lambda_2", 0.12, 0.12, 0.12},
	// Heavy Quark Expansion parameters for hadronic matrix elements ~ <B|O|B>
	{"B->B::mu_pi^2@1GeV", 0.35, 0.45, 0.55},
	{"B->B::mu_G^2@1GeV", 0.33, 0.35, 0.38},
	{"B->B::rho_D^3@1GeV", 0.10, 0.20, 0.30},
	{"B->B::rho_LS^3@1GeV", -0.30, -0.15, -0.00},
	// B->X_s gamma SM theory uncertainty
	{"B->X_sgamma::uncertainty", -1.0, 0.0, 1.0},
	// Experimental Input
	{"exp::BR(B->X_clnu)", 0.1005, 0.1033, 0.1061},
	{"exp::C(B->X_clnu, B->X_ulnu)", 0.57, 0.58, 0.59},
	{"exp::CKM(B->X_sll, B->X_clnu)", 0.975218, 0.98549, 0.995277},
	// Parameterize unknown admixture of l=e, l=mu in B->X_sll
	{"exp::Admixture-BR(B->X_sll)", 0.95, 1.0, 1.05},
}

// Defaults returns a view onto a freshly built store holding the default
// physics inputs. Every call builds a new store.
func Defaults() Parameters {
	return MustNew(DefaultTemplates...)
}
