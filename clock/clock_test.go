package clock

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/ezrec/mipsim/cpu"
	"github.com/ezrec/mipsim/emulator"
)

func assemble(config emulator.Config, program ...string) *emulator.Emulator {
	emu, err := emulator.NewEmulator(config)
	Expect(err).NotTo(HaveOccurred())
	err = emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	Expect(err).NotTo(HaveOccurred())
	return emu
}

var _ = Describe("Core", func() {
	var (
		engine sim.Engine
		emu    *emulator.Emulator
		core   *Core
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		emu = assemble(emulator.DefaultConfig(),
			".data",
			"val: .word 5",
			".text",
			"addi $t0, $zero, 10",
			"addi $t1, $zero, 20",
			"add $t2, $t0, $t1",
			"sw $t2, 0($zero)",
			"lw $t3, 0($zero)",
		)
		core = NewCore("Core", engine, 1*sim.GHz, emu)
	})

	It("should run one cycle per tick", func() {
		Expect(core.Tick()).To(BeTrue())
		Expect(core.Cycles).To(Equal(1))
		Expect(emu.Registers()[8]).To(Equal(int32(10)))
		Expect(emu.Cpu.Pc).To(Equal(uint32(1)))
	})

	It("should stop making progress once exhausted", func() {
		for range 5 {
			Expect(core.Tick()).To(BeTrue())
		}
		Expect(core.Tick()).To(BeFalse())
		Expect(core.Done).To(BeTrue())
		Expect(core.Err).NotTo(HaveOccurred())
		Expect(core.Tick()).To(BeFalse())
		Expect(core.Cycles).To(Equal(5))
	})

	It("should run to completion on the engine", func() {
		core.TickLater()
		Expect(engine.Run()).To(Succeed())

		Expect(core.Done).To(BeTrue())
		Expect(core.Cycles).To(Equal(5))
		regs := emu.Registers()
		Expect(regs[10]).To(Equal(int32(30)))
		Expect(regs[11]).To(Equal(int32(30)))
		Expect(emu.Memory()[0]).To(Equal(int32(30)))
		Expect(float64(engine.CurrentTime())).To(BeNumerically(">", 0))
	})
})

var _ = Describe("Run", func() {
	It("should report the simulated time", func() {
		emu := assemble(emulator.DefaultConfig(),
			".text",
			"beq $zero, $zero, done",
			"add $t0, $t1, $t1",
			"done: addi $t2, $zero, 7",
		)

		elapsed, err := Run(emu, Frequency(100))
		Expect(err).NotTo(HaveOccurred())
		Expect(float64(elapsed)).To(BeNumerically(">", 0))
		Expect(emu.Registers()[8]).To(Equal(int32(0)))
		Expect(emu.Registers()[10]).To(Equal(int32(7)))
	})

	It("should take longer at a slower clock", func() {
		program := []string{".text", "addi $t0, $zero, 1", "addi $t0, $t0, 1", "addi $t0, $t0, 1"}

		fast, err := Run(assemble(emulator.DefaultConfig(), program...), Frequency(1000))
		Expect(err).NotTo(HaveOccurred())
		slow, err := Run(assemble(emulator.DefaultConfig(), program...), Frequency(10))
		Expect(err).NotTo(HaveOccurred())

		Expect(float64(slow)).To(BeNumerically(">", float64(fast)))
	})

	It("should stop on a runtime error", func() {
		emu := assemble(emulator.DefaultConfig(),
			".text",
			"addi $t0, $zero, 1",
			"nor $t1, $t0, $t0",
			"addi $t2, $zero, 1",
		)

		_, err := Run(emu, Frequency(1000))
		Expect(err).To(MatchError(cpu.ErrOperationUnsupported))
		Expect(emu.Registers()[10]).To(Equal(int32(0)))
	})

	It("should stop at the step limit", func() {
		config := emulator.DefaultConfig()
		config.MaxSteps = 50
		emu := assemble(config, ".text", "spin: beq $zero, $zero, spin")

		_, err := Run(emu, Frequency(1000))
		Expect(err).To(MatchError(emulator.ErrStepLimit))
		Expect(emu.Ticks()).To(Equal(50))
	})
})
